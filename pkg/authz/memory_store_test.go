package authz_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CosDiabos/shield/pkg/authz"
)

func TestMemorySettingStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := authz.NewMemorySettingStore()

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, authz.ErrSettingNotFound)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "key", []byte("value")))

		got, err := store.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), got)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "key", []byte("first")))
		require.NoError(t, store.Set(ctx, "key", []byte("second")))

		got, err := store.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), got)
	})

	t.Run("defensive copies", func(t *testing.T) {
		value := []byte("original")
		require.NoError(t, store.Set(ctx, "copy", value))
		value[0] = 'X'

		got, err := store.Get(ctx, "copy")
		require.NoError(t, err)
		assert.Equal(t, []byte("original"), got)

		got[0] = 'Y'
		again, err := store.Get(ctx, "copy")
		require.NoError(t, err)
		assert.Equal(t, []byte("original"), again)
	})

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Get(canceled, "key")
		assert.ErrorIs(t, err, context.Canceled)

		err = store.Set(canceled, "key", []byte("value"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
