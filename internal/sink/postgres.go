package sink

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rbeggs/dcmap-crawler/internal/crawler"
)

var validTableName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// PostgresConfig controls the Postgres connection pool used for facility rows.
type PostgresConfig struct {
	DSN             string
	Table           string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type execCloser interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Close()
}

// PostgresSink writes facility records into Postgres.
type PostgresSink struct {
	pool  execCloser
	table string
}

// NewPostgresSink creates a Postgres-backed sink using the provided config.
func NewPostgresSink(ctx context.Context, cfg PostgresConfig) (*PostgresSink, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database.dsn is required")
	}
	table := cfg.Table
	if table == "" {
		table = "facilities"
	}
	if !validTableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &PostgresSink{pool: pool, table: table}, nil
}

// NewPostgresSinkWithPool constructs a sink from an existing pool (primarily
// for testing).
func NewPostgresSinkWithPool(pool execCloser, table string) (*PostgresSink, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is required")
	}
	if table == "" {
		table = "facilities"
	}
	if !validTableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &PostgresSink{pool: pool, table: table}, nil
}

// Write inserts one row per record. Rows already present keep their
// first-seen field values, matching the crawl's first-seen-wins dedup.
func (s *PostgresSink) Write(ctx context.Context, records []crawler.Facility) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, url, address, city, state, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name, url) DO NOTHING
	`, s.table)
	for _, rec := range records {
		_, err := s.pool.Exec(ctx, query,
			rec.Name,
			rec.URL,
			rec.Address,
			rec.City,
			rec.State,
			rec.PostalCode,
		)
		if err != nil {
			return fmt.Errorf("insert facility %q: %w", rec.Name, err)
		}
	}
	return nil
}

// Close releases the underlying pool resources.
func (s *PostgresSink) Close() {
	s.pool.Close()
}
