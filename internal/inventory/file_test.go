package inventory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStore_InitializesOnFirstAccess(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "room_inventory.json")
	store := NewFileStore(path, map[string]int{"Deluxe": 7, "Executive": 7})

	n, err := store.Get(ctx, "Deluxe")
	assert.NoError(t, err)
	assert.Equal(t, 7, n)

	// first access must have materialized the document
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "room_inventory.json")

	store := NewFileStore(path, map[string]int{"Deluxe": 7})
	assert.NoError(t, store.Set(ctx, "Deluxe", 4))

	reopened := NewFileStore(path, map[string]int{"Deluxe": 7})
	n, err := reopened.Get(ctx, "Deluxe")
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestFileStore_UnknownRoomType(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "room_inventory.json")
	store := NewFileStore(path, map[string]int{"Deluxe": 7})

	_, err := store.Get(ctx, "Presidential")
	assert.Error(t, err)
}

func TestFileStore_RejectsCorruptDocument(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "room_inventory.json")
	assert.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	store := NewFileStore(path, map[string]int{"Deluxe": 7})
	_, err := store.Get(ctx, "Deluxe")
	assert.Error(t, err)
}
