package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresAdapter stores each key as one row in a jsonb-valued table.
// Table names carry an environment prefix (dev_, test_, prod_) so several
// environments can share one database.
type PostgresAdapter struct {
	pool   *pgxpool.Pool
	table  string
	logger *slog.Logger
}

// CreateConnectionPool creates a pgx connection pool and verifies it.
//
// PgBouncer in transaction pooling mode (port 6543 on hosted Postgres) does
// not support prepared statements; when that port is detected and the user
// did not override the mode in the connection string, statement-description
// caching is used instead.
func CreateConnectionPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		slog.Debug("auto-configured cache_describe mode for PgBouncer compatibility", "port", 6543)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// NewPostgresAdapter creates the adapter and ensures its table exists.
// The table prefix is interpolated before the SQL is sent, so each
// environment gets its own statements.
func NewPostgresAdapter(ctx context.Context, pool *pgxpool.Pool, tablePrefix string, logger *slog.Logger) (*PostgresAdapter, error) {
	a := &PostgresAdapter{
		pool:   pool,
		table:  tablePrefix + "catalog_state",
		logger: logger,
	}

	_, err := pool.Exec(ctx, fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (
			key   text PRIMARY KEY,
			value jsonb NOT NULL
		)`, a.table))
	if err != nil {
		return nil, fmt.Errorf("ensure table %s: %w", a.table, err)
	}

	logger.Info("postgres storage ready", "table", a.table)
	return a, nil
}

func (a *PostgresAdapter) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var value json.RawMessage
	err := a.pool.QueryRow(ctx, fmt.Sprintf(
		`SELECT value FROM %s WHERE key = $1`, a.table), key).Scan(&value)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (a *PostgresAdapter) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for %q: %w", key, err)
	}

	_, err = a.pool.Exec(ctx, fmt.Sprintf(
		`INSERT INTO %s (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, a.table),
		key, payload)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (a *PostgresAdapter) Remove(ctx context.Context, key string) error {
	_, err := a.pool.Exec(ctx, fmt.Sprintf(
		`DELETE FROM %s WHERE key = $1`, a.table), key)
	if err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}
