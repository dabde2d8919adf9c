package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhasan-dev/finarch/internal/storage"
)

func TestSQLite_SetGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "finarch.db")

	kv, err := storage.OpenSQLite(path)
	require.NoError(t, err)

	defer kv.Close()

	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "theme", "dark"))

	got, ok, err := kv.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", got)

	// Overwrite replaces the previous value.
	require.NoError(t, kv.Set(ctx, "theme", "light"))

	got, ok, err = kv.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", got)
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finarch.db")
	ctx := context.Background()

	kv, err := storage.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "pref_currency", "AUD"))
	require.NoError(t, kv.Close())

	kv, err = storage.OpenSQLite(path)
	require.NoError(t, err)

	defer kv.Close()

	got, ok, err := kv.Get(ctx, "pref_currency")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "AUD", got)
}
