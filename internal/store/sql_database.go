package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/migrations"
)

// DB wraps the server-side PostgreSQL connection pool.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// NewDB wraps an already-open connection pool. Backends that manage their
// own pool (and tests) use this instead of NewConnectPostgres.
func NewDB(conn *sql.DB, logger *logger.Logger) *DB {
	return &DB{
		DB:              conn,
		logger:          logger,
		errorClassifier: NewPostgresErrorClassifier(),
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// InTx runs fn within a single transaction, committing on nil return and
// rolling back otherwise. Profile writes use this so the propagation
// trigger commits atomically with the originating mutation.
func (db *DB) InTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// querier abstracts *sql.DB and *sql.Tx so every repository method can run
// either standalone or inside an enclosing transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
