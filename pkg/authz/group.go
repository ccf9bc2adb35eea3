package authz

import (
	"context"
	"slices"
	"strings"
)

// Group is a named role backed by one row of the permission Matrix. Instances
// are request-scoped: the permission list is loaded lazily on first use and
// memoized for the lifetime of the instance, with no cross-instance
// invalidation. A Group must not be shared across concurrent requests.
type Group struct {
	alias  string
	matrix *Matrix

	// perms is nil until loaded; a loaded empty list is non-nil.
	perms []string
}

// NewGroup creates a Group for the given alias. The alias does not have to
// exist in the matrix; an unknown alias behaves as an empty permission set.
func NewGroup(matrix *Matrix, alias string) *Group {
	return &Group{
		alias:  alias,
		matrix: matrix,
	}
}

// Alias returns the group's immutable identity.
func (g *Group) Alias() string {
	return g.alias
}

// Permissions returns the group's permission list, loading it from the matrix
// on first call.
func (g *Group) Permissions(ctx context.Context) ([]string, error) {
	if err := g.populate(ctx); err != nil {
		return nil, err
	}

	perms := make([]string, len(g.perms))
	copy(perms, g.perms)
	return perms, nil
}

// SetPermissions replaces the group's full permission list and persists it.
// The cache is only updated once the write succeeded.
func (g *Group) SetPermissions(ctx context.Context, permissions []string) error {
	if err := g.matrix.Set(ctx, g.alias, permissions); err != nil {
		return err
	}

	perms := make([]string, len(permissions))
	copy(perms, permissions)
	g.perms = perms
	return nil
}

// AddPermission grants a single permission and persists the change. New
// entries are prepended so the most recently added grant sits first.
func (g *Group) AddPermission(ctx context.Context, permission string) error {
	if err := g.populate(ctx); err != nil {
		return err
	}

	perms := make([]string, 0, len(g.perms)+1)
	perms = append(perms, permission)
	perms = append(perms, g.perms...)

	return g.SetPermissions(ctx, perms)
}

// RemovePermission revokes the first exact match of permission and persists
// the change. Removing an absent permission is a silent no-op.
func (g *Group) RemovePermission(ctx context.Context, permission string) error {
	if err := g.populate(ctx); err != nil {
		return err
	}

	i := slices.Index(g.perms, permission)
	if i < 0 {
		return nil
	}

	perms := make([]string, 0, len(g.perms)-1)
	perms = append(perms, g.perms[:i]...)
	perms = append(perms, g.perms[i+1:]...)

	return g.SetPermissions(ctx, perms)
}

// Can reports whether the group holds the given permission, either verbatim
// or through a wildcard grant exactly one level up ("users.create" is covered
// by "users.*", "users.profile.edit" by "users.profile.*" but not by
// "users.*"). Can never fails: a matrix that cannot be read denies everything.
func (g *Group) Can(ctx context.Context, permission string) bool {
	if err := g.populate(ctx); err != nil {
		return false
	}

	if slices.Contains(g.perms, permission) {
		return true
	}

	return slices.Contains(g.perms, wildcardOf(permission))
}

// wildcardOf derives the single wildcard grant that would cover permission.
// Up to two segments check the first segment's wildcard; deeper permissions
// drop only their last segment. A permission without any separator degrades
// to "<permission>.*".
func wildcardOf(permission string) string {
	segments := strings.Split(permission, ".")
	if len(segments) < 3 {
		return segments[0] + ".*"
	}
	return strings.Join(segments[:len(segments)-1], ".") + ".*"
}

func (g *Group) populate(ctx context.Context) error {
	if g.perms != nil {
		return nil
	}

	perms, err := g.matrix.Get(ctx, g.alias)
	if err != nil {
		return err
	}
	if perms == nil {
		perms = []string{}
	}

	g.perms = perms
	return nil
}
