// Package db provides PostgreSQL mirroring of the question bank for
// deployments that outgrow the single JSON document. The file store stays
// authoritative; the mirror serves read-side consumers.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the questions table if it does not exist.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS questions (
			id                  BIGINT PRIMARY KEY,
			question            TEXT NOT NULL,
			type                TEXT NOT NULL,
			category            TEXT NOT NULL,
			difficulty          TEXT NOT NULL,
			keywords            JSONB NOT NULL DEFAULT '[]',
			target_roles        JSONB NOT NULL DEFAULT '[]',
			usage_count         INTEGER NOT NULL DEFAULT 0,
			avg_score           DOUBLE PRECISION NOT NULL DEFAULT 0,
			success_rate        DOUBLE PRECISION NOT NULL DEFAULT 0,
			effectiveness_score DOUBLE PRECISION NOT NULL DEFAULT 0.5,
			created_date        TIMESTAMPTZ NOT NULL,
			performance_history JSONB NOT NULL DEFAULT '[]'
		)`)
	if err != nil {
		return fmt.Errorf("failed to create questions table: %w", err)
	}
	return nil
}
