package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingBackend simulates a broken host storage layer
type failingBackend struct{}

func (f *failingBackend) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("backend unavailable")
}

func (f *failingBackend) Set(ctx context.Context, key, value string) error {
	return errors.New("backend unavailable")
}

func (f *failingBackend) Delete(ctx context.Context, key string) error {
	return errors.New("backend unavailable")
}

func (f *failingBackend) List(ctx context.Context, prefix string) ([]string, error) {
	return nil, errors.New("backend unavailable")
}

func TestStore_GetItem_NeverSet(t *testing.T) {
	store := NewStore(NewMemoryBackend())

	value := store.GetItem(context.Background(), "missing")
	assert.Nil(t, value)
}

func TestStore_SetAndGetItem(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryBackend())

	ok := store.SetItem(ctx, "settings", map[string]interface{}{"theme": "dark", "count": float64(3)})
	require.True(t, ok)

	value := store.GetItem(ctx, "settings")
	require.NotNil(t, value)

	decoded, ok := value.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "dark", decoded["theme"])
	assert.Equal(t, float64(3), decoded["count"])
}

func TestStore_GetItem_UndecodableValue(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, "broken", "{not json"))

	store := NewStore(backend)
	assert.Nil(t, store.GetItem(ctx, "broken"))
}

func TestStore_GetItem_BackendFailure(t *testing.T) {
	store := NewStore(&failingBackend{})

	// Failures are indistinguishable from absent keys
	assert.Nil(t, store.GetItem(context.Background(), "any"))
}

func TestStore_SetItem_BackendFailure(t *testing.T) {
	store := NewStore(&failingBackend{})

	assert.False(t, store.SetItem(context.Background(), "any", "value"))
}

func TestStore_SetItem_UnencodableValue(t *testing.T) {
	store := NewStore(NewMemoryBackend())

	assert.False(t, store.SetItem(context.Background(), "bad", make(chan int)))
}

func TestStore_DeleteItem(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryBackend())

	require.True(t, store.SetItem(ctx, "key", "value"))
	assert.True(t, store.DeleteItem(ctx, "key"))
	assert.Nil(t, store.GetItem(ctx, "key"))

	// Deleting a missing key still succeeds
	assert.True(t, store.DeleteItem(ctx, "key"))

	broken := NewStore(&failingBackend{})
	assert.False(t, broken.DeleteItem(ctx, "key"))
}

func TestStore_ListKeys(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryBackend())

	require.True(t, store.SetItem(ctx, "lead:1", "a"))
	require.True(t, store.SetItem(ctx, "lead:2", "b"))
	require.True(t, store.SetItem(ctx, "website:1", "c"))

	keys := store.ListKeys(ctx, "lead:")
	assert.Equal(t, []string{"lead:1", "lead:2"}, keys)

	// Failure collapses to an empty list
	broken := NewStore(&failingBackend{})
	assert.Equal(t, []string{}, broken.ListKeys(ctx, "lead:"))
}

func TestStore_LoadAllItems(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	store := NewStore(backend)

	require.True(t, store.SetItem(ctx, "lead:1", map[string]interface{}{"company": "Acme Roofing"}))
	require.True(t, store.SetItem(ctx, "lead:2", map[string]interface{}{"company": "Best Plumbing"}))
	require.True(t, store.SetItem(ctx, "other:1", "ignored"))

	// One undecodable value under the prefix is skipped, not an error
	require.NoError(t, backend.Set(ctx, "lead:3", "{broken"))

	items := store.LoadAllItems(ctx, "lead:")
	require.Len(t, items, 2)
	assert.Equal(t, "lead:1", items[0].Key)
	assert.Equal(t, "lead:2", items[1].Key)
}

func TestMemoryBackend_GetMissing(t *testing.T) {
	backend := NewMemoryBackend()

	_, err := backend.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
