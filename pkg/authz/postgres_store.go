package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultSettingsTable = "auth_settings"

// PostgresSettingStore persists settings in a single PostgreSQL table with a
// key/value schema. Writes are upserts, so each Set is an atomic overwrite of
// one row and concurrent writers to the same key serialize on the row lock
// (last writer wins).
type PostgresSettingStore struct {
	pool  *pgxpool.Pool
	table string
}

// PostgresStoreOption configures a PostgresSettingStore.
type PostgresStoreOption func(*PostgresSettingStore)

// WithSettingsTable overrides the table name (default "auth_settings").
func WithSettingsTable(table string) PostgresStoreOption {
	return func(s *PostgresSettingStore) {
		s.table = table
	}
}

// NewPostgresSettingStore creates a SettingStore backed by the given pool.
func NewPostgresSettingStore(pool *pgxpool.Pool, opts ...PostgresStoreOption) *PostgresSettingStore {
	s := &PostgresSettingStore{
		pool:  pool,
		table: defaultSettingsTable,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureSchema creates the settings table if it does not exist.
func (s *PostgresSettingStore) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (key TEXT PRIMARY KEY, value BYTEA NOT NULL)`,
		s.table,
	)
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("authz: create settings table: %w", err)
	}
	return nil
}

// Get returns the value stored under key, or ErrSettingNotFound.
func (s *PostgresSettingStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := fmt.Sprintf(`SELECT value FROM %s WHERE key = $1`, s.table)

	var value []byte
	if err := s.pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set overwrites the value stored under key.
func (s *PostgresSettingStore) Set(ctx context.Context, key string, value []byte) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		s.table,
	)
	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("authz: persist setting %q: %w", key, err)
	}
	return nil
}
