package authz_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CosDiabos/shield/pkg/authz"
)

func TestParseMatrixYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
admin:
  - admin.access
  - users.*
user:
  - users.profile.edit
beta:
  - beta.access
`)

	matrix, err := authz.ParseMatrixYAML(data)
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"admin": {"admin.access", "users.*"},
		"user":  {"users.profile.edit"},
		"beta":  {"beta.access"},
	}, matrix)
}

func TestParseMatrixYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := authz.ParseMatrixYAML([]byte("admin: [unclosed"))
	assert.Error(t, err)
}

func TestParseMatrixYAML_SeedsMatrix(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	defaults, err := authz.ParseMatrixYAML([]byte("admin:\n  - users.*\n"))
	require.NoError(t, err)

	matrix := authz.NewMatrix(authz.NewMemorySettingStore())
	require.NoError(t, matrix.Seed(ctx, defaults))

	assert.True(t, authz.NewGroup(matrix, "admin").Can(ctx, "users.delete"))
}
