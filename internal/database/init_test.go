package database

import (
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RepliqStudio/repliq/internal/database/schema"
)

func TestInitializeDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Every schema statement runs once, in order
	for range schema.TableDefinitions {
		mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, InitializeDatabase(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitializeDatabase_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(".*").WillReturnError(errors.New("permission denied"))

	err = InitializeDatabase(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create table")
}

func TestTableDefinitions_AreIdempotent(t *testing.T) {
	for _, query := range schema.TableDefinitions {
		assert.True(t, strings.Contains(query, "IF NOT EXISTS"),
			"schema statement must be safe to re-run: %s", query)
	}
}
