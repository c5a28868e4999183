package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// MapOfAny is persisted as JSON in the database
type MapOfAny map[string]any

// Scan implements the sql.Scanner interface
func (m *MapOfAny) Scan(val interface{}) error {

	var data []byte

	if b, ok := val.([]byte); ok {
		// VERY IMPORTANT: we need to clone the bytes here
		// The sql driver will reuse the same bytes RAM slots for future queries
		data = bytes.Clone(b)
	} else if s, ok := val.(string); ok {
		data = []byte(s)
	} else if val == nil {
		return nil
	}

	return json.Unmarshal(data, m)
}

// Value implements the driver.Valuer interface
func (m MapOfAny) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// RawJSON carries an opaque JSON document (object or array) between the API
// and a JSONB column without imposing a schema on it.
// It implements sql.Scanner, driver.Valuer, json.Marshaler and json.Unmarshaler.
type RawJSON []byte

// Scan implements the sql.Scanner interface
func (r *RawJSON) Scan(val interface{}) error {
	switch v := val.(type) {
	case []byte:
		// Clone: the sql driver reuses the scan buffer between rows
		*r = bytes.Clone(v)
		return nil
	case string:
		*r = []byte(v)
		return nil
	case nil:
		*r = nil
		return nil
	default:
		return errors.New("incompatible type for RawJSON")
	}
}

// Value implements the driver.Valuer interface
func (r RawJSON) Value() (driver.Value, error) {
	if len(r) == 0 {
		return nil, nil
	}
	return []byte(r), nil
}

// MarshalJSON implements the json.Marshaler interface
func (r RawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (r *RawJSON) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = nil
		return nil
	}
	*r = bytes.Clone(data)
	return nil
}
