package store

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUnknownFamily is returned when an entity family has no cache
	// table registered.
	ErrUnknownFamily = errors.New("unknown entity family")
	// ErrExecutingQuery wraps failures to execute a SQL statement.
	ErrExecutingQuery = errors.New("error executing query")
	// ErrScanningRow wraps failures to scan a single result row.
	ErrScanningRow = errors.New("error scanning row")
	// ErrScanningRows wraps errors detected during rows iteration.
	ErrScanningRows = errors.New("error iterating rows")
	// ErrDuplicate is returned when an insert collides with an existing
	// primary key.
	ErrDuplicate = errors.New("duplicate record")
)
