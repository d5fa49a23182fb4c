// Package database manages the PostgreSQL connection pool and hands out
// request-scoped sessions. Tenant isolation is implemented at the session
// level by remapping the connection's search_path to the tenant's schema.
package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/specterhq/specter/internal/config"
)

var ErrConnectFailed = errors.New("database: could not open connection pool")

// DB wraps a pgx connection pool. One DB is created per process at startup
// and injected into every collaborator that needs store access.
type DB struct {
	pool *pgxpool.Pool
}

// Open parses the connection string, applies pool settings and connects with
// a bounded retry loop. Each attempt is verified with a ping so credential
// and permission problems surface at startup rather than on first request.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return &DB{pool: pool}, nil
			}
			pool.Close()
		}
		time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
	}
	return nil, ErrConnectFailed
}

// Close shuts the pool down. Safe to call once at process exit.
func (db *DB) Close() {
	db.pool.Close()
}

// Healthcheck returns a probe suitable for the health endpoint.
func (db *DB) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		return db.pool.Ping(ctx)
	}
}
