package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// cacheFamilies is the allowlist of entity families with a local cache
// table. Family names are interpolated into table names, so only values
// from this set are ever accepted.
var cacheFamilies = map[string]struct{}{
	"account":        {},
	"profile":        {},
	"profile_detail": {},
	"appointment":    {},
	"countdown":      {},
	"medication":     {},
	"todo_list":      {},
	"todo_item":      {},
	"contact":        {},
	"mood":           {},
	"reminder":       {},
	"meal_plan":      {},
}

// ClientDB wraps the local SQLite handle shared by the entity cache and the
// mutation queue. The connection pool is capped at one connection, which
// serializes all local-store access and removes local race conditions by
// construction.
type ClientDB struct {
	*sql.DB
}

// OpenClientDB opens (creating if necessary) the local cache database at
// path and ensures the schema exists. Pass ":memory:" for an ephemeral
// cache in tests.
func OpenClientDB(path string) (*ClientDB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path + "?_busy_timeout=5000&_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open client db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err = createClientSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}

	return &ClientDB{DB: db}, nil
}

func createClientSchema(ctx context.Context, db *sql.DB) error {
	for family := range cacheFamilies {
		if _, err := db.ExecContext(ctx, fmt.Sprintf(createCacheTable, cacheTableName(family))); err != nil {
			return fmt.Errorf("create cache table for %s: %w", family, err)
		}
	}

	if _, err := db.ExecContext(ctx, createMutationQueueTable); err != nil {
		return fmt.Errorf("create mutation queue table: %w", err)
	}

	return nil
}

func cacheTableName(family string) string {
	return "cache_" + family
}

func validateFamily(family string) error {
	if _, ok := cacheFamilies[family]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	return nil
}
