package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config holds the PostgreSQL connection settings loaded from the environment.
type Config struct {
	ConnectionString string        `env:"AUTH_PG_URL,required"`
	MaxOpenConns     int32         `env:"AUTH_PG_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns     int32         `env:"AUTH_PG_MAX_IDLE_CONNS" envDefault:"5"`
	RetryAttempts    int           `env:"AUTH_PG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval    time.Duration `env:"AUTH_PG_RETRY_INTERVAL" envDefault:"5s"`
}

var (
	ErrFailedToParseConfig = errors.New("pg: failed to parse connection config")
	ErrNotReady            = errors.New("pg: database not reachable")
	ErrHealthcheckFailed   = errors.New("pg: healthcheck failed")
)

// Connect establishes a pgx connection pool with linear backoff between
// attempts, so the auth store survives a database that comes up slower than
// the service.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	connConfig, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConfig, err)
	}
	connConfig.MaxConns = cfg.MaxOpenConns
	connConfig.MinConns = cfg.MaxIdleConns

	for i := range cfg.RetryAttempts {
		pool, err := pgxpool.NewWithConfig(ctx, connConfig)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrNotReady, ctx.Err())
		case <-time.After(time.Duration(i+1) * cfg.RetryInterval):
		}
	}

	return nil, ErrNotReady
}

// Healthcheck returns a probe function for liveness/readiness endpoints.
func Healthcheck(pool *pgxpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// IsNotFoundError detects pgx.ErrNoRows for consistent "not found" handling
// in UserProvider implementations built on pgx.
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, pgx.ErrNoRows)
}
