// Package kvtest checks that a core.KVStore implementation behaves like the others.
package kvtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gradebook/core"
)

// Run exercises the store contract on a fresh, empty store.
func Run(t *testing.T, store core.KVStore) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.Equal(t, core.ErrKeyNotFound, err)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "students", `[{"id":"s1"}]`))
		val, err := store.Get(ctx, "students")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"s1"}]`, val)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "theme", "light"))
		require.NoError(t, store.Set(ctx, "theme", "dark"))
		val, err := store.Get(ctx, "theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", val)
	})

	t.Run("empty value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "empty", ""))
		val, err := store.Get(ctx, "empty")
		require.NoError(t, err)
		assert.Equal(t, "", val)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "gone", "x"))
		require.NoError(t, store.Delete(ctx, "gone"))
		_, err := store.Get(ctx, "gone")
		assert.Equal(t, core.ErrKeyNotFound, err)

		// deleting a missing key is not an error
		assert.NoError(t, store.Delete(ctx, "gone"))
	})
}
