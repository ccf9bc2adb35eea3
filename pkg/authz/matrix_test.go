package authz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CosDiabos/shield/pkg/authz"
)

func TestMatrix_GetUnknownAlias(t *testing.T) {
	t.Parallel()

	matrix := authz.NewMatrix(authz.NewMemorySettingStore())

	perms, err := matrix.Get(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, perms)
}

func TestMatrix_SetGetRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	matrix := authz.NewMatrix(authz.NewMemorySettingStore())

	want := []string{"users.*", "reports.view"}
	require.NoError(t, matrix.Set(ctx, "admin", want))

	got, err := matrix.Get(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Other aliases are unaffected.
	other, err := matrix.Get(ctx, "user")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMatrix_SetOverwritesRow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	matrix := authz.NewMatrix(authz.NewMemorySettingStore())

	require.NoError(t, matrix.Set(ctx, "admin", []string{"users.create", "users.edit"}))
	require.NoError(t, matrix.Set(ctx, "admin", []string{"reports.view"}))

	got, err := matrix.Get(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, []string{"reports.view"}, got)
}

func TestMatrix_GetReturnsCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	matrix := authz.NewMatrix(authz.NewMemorySettingStore())
	require.NoError(t, matrix.Set(ctx, "admin", []string{"users.create"}))

	got, err := matrix.Get(ctx, "admin")
	require.NoError(t, err)
	got[0] = "users.delete"

	again, err := matrix.Get(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, []string{"users.create"}, again)
}

func TestMatrix_Seed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	matrix := authz.NewMatrix(authz.NewMemorySettingStore())

	defaults := map[string][]string{
		"admin": {"admin.access", "users.*"},
		"user":  {"users.profile.edit"},
	}
	require.NoError(t, matrix.Seed(ctx, defaults))

	perms, err := matrix.Get(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin.access", "users.*"}, perms)

	// Seeding again must not clobber a persisted matrix.
	require.NoError(t, matrix.Set(ctx, "admin", []string{"reports.view"}))
	require.NoError(t, matrix.Seed(ctx, defaults))

	perms, err = matrix.Get(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, []string{"reports.view"}, perms)
}

func TestMatrix_CustomKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := authz.NewMemorySettingStore()
	matrix := authz.NewMatrix(store, authz.WithMatrixKey("tenant42.matrix"))
	require.NoError(t, matrix.Set(ctx, "admin", []string{"users.*"}))

	_, err := store.Get(ctx, "tenant42.matrix")
	require.NoError(t, err)

	_, err = store.Get(ctx, authz.MatrixKey)
	assert.ErrorIs(t, err, authz.ErrSettingNotFound)
}

// failingStore simulates an unreadable configuration backend.
type failingStore struct {
	err error
}

func (s *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, s.err
}

func (s *failingStore) Set(ctx context.Context, key string, value []byte) error {
	return s.err
}

func TestMatrix_StoreFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	matrix := authz.NewMatrix(&failingStore{err: errors.New("connection refused")})

	_, err := matrix.Get(ctx, "admin")
	assert.ErrorIs(t, err, authz.ErrConfigurationMissing)

	err = matrix.Set(ctx, "admin", []string{"users.*"})
	assert.ErrorIs(t, err, authz.ErrConfigurationMissing)

	err = matrix.Seed(ctx, map[string][]string{"admin": {"users.*"}})
	assert.ErrorIs(t, err, authz.ErrConfigurationMissing)
}

func TestMatrix_CorruptedValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := authz.NewMemorySettingStore()
	require.NoError(t, store.Set(ctx, authz.MatrixKey, []byte("not json")))

	matrix := authz.NewMatrix(store)
	_, err := matrix.Get(ctx, "admin")
	assert.ErrorIs(t, err, authz.ErrConfigurationMissing)
}
