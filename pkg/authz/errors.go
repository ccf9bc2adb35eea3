package authz

import "errors"

var (
	// ErrSettingNotFound is returned by a SettingStore when the key has no value.
	ErrSettingNotFound = errors.New("authz: setting not found")

	// ErrConfigurationMissing is returned when the permission matrix cannot be
	// read from the backing store. It is an operator-level failure, not a
	// per-request authorization outcome.
	ErrConfigurationMissing = errors.New("authz: permission matrix configuration unreadable")
)
