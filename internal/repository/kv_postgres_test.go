package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RepliqStudio/repliq/internal/repository/testutil"
	"github.com/RepliqStudio/repliq/pkg/storage"
)

func TestKVRepository_Get(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewKVRepository(db)

	rows := sqlmock.NewRows([]string{"value"}).AddRow(`{"theme":"dark"}`)
	mock.ExpectQuery(`SELECT value FROM kv_store WHERE key = \$1`).
		WithArgs("settings").
		WillReturnRows(rows)

	value, err := repo.Get(context.Background(), "settings")
	require.NoError(t, err)
	assert.Equal(t, `{"theme":"dark"}`, value)

	// Missing key maps to storage.ErrKeyNotFound
	mock.ExpectQuery(`SELECT value FROM kv_store WHERE key = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Set(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewKVRepository(db)

	mock.ExpectExec(`INSERT INTO kv_store \(key, value, created_at, updated_at\) VALUES \(\$1, \$2, \$3, \$4\) ON CONFLICT \(key\) DO UPDATE SET value = EXCLUDED\.value, updated_at = EXCLUDED\.updated_at`).
		WithArgs("settings", `{"theme":"dark"}`, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Set(context.Background(), "settings", `{"theme":"dark"}`))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Delete(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewKVRepository(db)

	// Deleting a missing key is still a success
	mock.ExpectExec(`DELETE FROM kv_store WHERE key = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "missing"))

	mock.ExpectExec(`DELETE FROM kv_store WHERE key = \$1`).
		WithArgs("broken").
		WillReturnError(errors.New("connection reset"))

	assert.Error(t, repo.Delete(context.Background(), "broken"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_List(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewKVRepository(db)

	rows := sqlmock.NewRows([]string{"key"}).
		AddRow("lead:1").
		AddRow("lead:2")

	mock.ExpectQuery(`SELECT key FROM kv_store WHERE key LIKE \$1 \|\| '%' ORDER BY key`).
		WithArgs("lead:").
		WillReturnRows(rows)

	keys, err := repo.List(context.Background(), "lead:")
	require.NoError(t, err)
	assert.Equal(t, []string{"lead:1", "lead:2"}, keys)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// KVRepository must satisfy the storage backend contract
var _ storage.Backend = (*KVRepository)(nil)
