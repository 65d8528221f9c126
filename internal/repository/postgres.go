package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"media-relay/internal/domain"
)

// PostgresFetchLog records successful fetches and answers diagnostics
// probes. It is an optional capability: when DATABASE_URL is unset the
// service simply runs without it.
type PostgresFetchLog struct {
	pool *pgxpool.Pool
}

func NewPostgresFetchLog(ctx context.Context, dsn string) (*PostgresFetchLog, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	_, err = pool.Exec(ctx, `
    CREATE TABLE IF NOT EXISTS fetches (
        id SERIAL PRIMARY KEY,
        platform TEXT NOT NULL,
        url TEXT NOT NULL,
        created_at TIMESTAMP NOT NULL
    );
`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create fetches table: %w", err)
	}

	return &PostgresFetchLog{pool: pool}, nil
}

// RecordFetch appends one row per successfully served fetch.
func (r *PostgresFetchLog) RecordFetch(ctx context.Context, platform domain.Platform, url string) error {
	_, err := r.pool.Exec(ctx,
		"INSERT INTO fetches(platform, url, created_at) VALUES ($1, $2, $3)",
		string(platform), url, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert fetch: %w", err)
	}
	return nil
}

func (r *PostgresFetchLog) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Tables lists the public tables, used by the diagnostics endpoint.
func (r *PostgresFetchLog) Tables(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *PostgresFetchLog) Close() {
	r.pool.Close()
}
