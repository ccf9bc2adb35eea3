package authz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// MatrixKey is the setting key the permission matrix is persisted under.
const MatrixKey = "authgroups.matrix"

// Matrix is the process-wide mapping of group alias to granted permissions.
// The whole mapping lives under a single setting key; every mutation rewrites
// one group's row via a read-modify-write cycle over the full mapping and
// persists synchronously, so callers can treat a returned nil error as
// durable.
type Matrix struct {
	store SettingStore
	key   string

	// mu serializes read-modify-write cycles through this instance. Writers
	// going through different Matrix values (or processes) fall back to the
	// store's last-writer-wins semantics.
	mu sync.Mutex
}

// MatrixOption configures a Matrix.
type MatrixOption func(*Matrix)

// WithMatrixKey overrides the setting key (default MatrixKey).
func WithMatrixKey(key string) MatrixOption {
	return func(m *Matrix) {
		m.key = key
	}
}

// NewMatrix creates a Matrix persisted in the given store.
func NewMatrix(store SettingStore, opts ...MatrixOption) *Matrix {
	m := &Matrix{
		store: store,
		key:   MatrixKey,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the permissions granted to alias. An unknown alias yields an
// empty list, never an error; only store failures propagate.
func (m *Matrix) Get(ctx context.Context, alias string) ([]string, error) {
	matrix, err := m.load(ctx)
	if err != nil {
		return nil, err
	}

	perms := matrix[alias]
	permsCopy := make([]string, len(perms))
	copy(permsCopy, perms)
	return permsCopy, nil
}

// Set overwrites the full permission list for alias and persists immediately.
func (m *Matrix) Set(ctx context.Context, alias string, permissions []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	matrix, err := m.load(ctx)
	if err != nil {
		return err
	}

	permsCopy := make([]string, len(permissions))
	copy(permsCopy, permissions)
	matrix[alias] = permsCopy

	return m.save(ctx, matrix)
}

// Seed writes the given defaults only when no matrix has been persisted yet.
// Intended for process initialization.
func (m *Matrix) Seed(ctx context.Context, defaults map[string][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.store.Get(ctx, m.key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrSettingNotFound) {
		return errors.Join(ErrConfigurationMissing, err)
	}

	return m.save(ctx, defaults)
}

func (m *Matrix) load(ctx context.Context) (map[string][]string, error) {
	raw, err := m.store.Get(ctx, m.key)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return make(map[string][]string), nil
		}
		return nil, errors.Join(ErrConfigurationMissing, err)
	}

	matrix := make(map[string][]string)
	if err := json.Unmarshal(raw, &matrix); err != nil {
		return nil, errors.Join(ErrConfigurationMissing, fmt.Errorf("decode permission matrix: %w", err))
	}
	return matrix, nil
}

func (m *Matrix) save(ctx context.Context, matrix map[string][]string) error {
	raw, err := json.Marshal(matrix)
	if err != nil {
		return fmt.Errorf("authz: encode permission matrix: %w", err)
	}
	return m.store.Set(ctx, m.key, raw)
}
