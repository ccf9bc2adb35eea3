package authz

import "context"

// SettingStore persists configuration values under string keys. The permission
// matrix is stored as a single value, so a store only needs plain get/set
// semantics. Implementations must be safe for concurrent use and must treat
// every Set as an atomic overwrite of the whole value.
type SettingStore interface {
	// Get returns the value stored under key, or ErrSettingNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
}
