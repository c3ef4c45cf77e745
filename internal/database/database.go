package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Supported values for the DATABASE_DRIVER setting.
const (
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
)

// DBTX is the subset of *sql.DB and *sql.Tx used by repositories, so the same
// query code runs inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB wraps the shared *sql.DB handle. With the pgx driver it also owns the
// pgxpool.Pool backing that handle.
type DB struct {
	sql  *sql.DB
	pool *pgxpool.Pool
}

// Open connects to databaseURL with the named driver and verifies the
// connection. The pgx driver goes through a pgxpool.Pool exposed as *sql.DB;
// the postgres driver uses lib/pq directly.
func Open(ctx context.Context, driver, databaseURL string) (*DB, error) {
	switch driver {
	case DriverPgx, "":
		return openPgx(ctx, databaseURL)
	case DriverPostgres:
		return openPQ(ctx, databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func openPgx(ctx context.Context, databaseURL string) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{sql: stdlib.OpenDBFromPool(pool), pool: pool}, nil
}

func openPQ(ctx context.Context, databaseURL string) (*DB, error) {
	sqlDB, err := sql.Open(DriverPostgres, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{sql: sqlDB}, nil
}

// New wraps an existing *sql.DB. Used by tests with sqlmock.
func New(sqlDB *sql.DB) *DB {
	return &DB{sql: sqlDB}
}

// Close releases the handle and, when present, the pgx pool.
func (db *DB) Close() {
	db.sql.Close()
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping verifies the database connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.sql.PingContext(ctx)
}

// Conn returns the handle for non-transactional queries.
func (db *DB) Conn() DBTX {
	return db.sql
}

// InTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise; fn's error is returned unchanged.
func (db *DB) InTx(ctx context.Context, fn func(tx DBTX) error) error {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
