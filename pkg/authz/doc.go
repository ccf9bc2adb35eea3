// Package authz provides group-based authorization backed by a persisted
// permission matrix.
//
// The matrix maps group aliases to ordered permission lists and lives under a
// single setting key in a pluggable SettingStore (in-memory, Redis, or
// PostgreSQL backends are included). Groups are lightweight request-scoped
// views over one matrix row: the permission list is loaded lazily, memoized
// per instance, and every mutation is persisted synchronously.
//
// Key concepts:
//
//   - Permission: a dot-separated string identifying a guarded action,
//     e.g. "users.create" or "users.profile.edit"
//   - Wildcard grant: a permission ending in ".*" covering all actions exactly
//     one level below its prefix ("users.*" covers "users.create" but not
//     "users.profile.edit")
//   - Group: a named role owning one row of the matrix
//
// Basic usage:
//
//	store := authz.NewMemorySettingStore()
//	matrix := authz.NewMatrix(store)
//
//	// Seed defaults at startup (no-op once persisted).
//	_ = matrix.Seed(ctx, map[string][]string{
//	    "admin": {"admin.access", "users.*"},
//	    "user":  {"users.profile.edit"},
//	})
//
//	// Authorization decision point.
//	group := authz.NewGroup(matrix, "admin")
//	if group.Can(ctx, "users.delete") {
//	    // allowed via "users.*"
//	}
//
//	// Mutations persist immediately.
//	_ = group.AddPermission(ctx, "reports.view")
//	_ = group.RemovePermission(ctx, "admin.access")
//
// An unknown alias behaves as an empty permission set, so Can denies by
// construction. Can itself never fails; a matrix that cannot be read denies
// everything while mutating operations surface the store error.
package authz
