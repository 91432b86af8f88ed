package db

import (
	"context"
	"strings"
)

// Row is a single result row keyed by column name.
type Row map[string]any

// Result carries the rows a statement returned. DDL statements normally
// produce none.
type Result struct {
	Rows []Row
}

// Executor sends one SQL statement to a data store. It is the only I/O
// boundary of this module; callers own the connection lifecycle.
type Executor interface {
	Execute(ctx context.Context, query string, params ...any) (Result, error)
}

// Conn couples an Executor with the close of its underlying connection.
type Conn interface {
	Executor
	Close() error
}

// returnsRows reports whether the statement is expected to produce a row
// set, which decides between the driver's query and exec paths. Write
// statements with a RETURNING clause take the query path too, so their rows
// survive the trip through Execute.
func returnsRows(query string) bool {
	stmt := strings.ToUpper(strings.TrimSpace(query))
	for _, prefix := range []string{"SELECT", "WITH", "SHOW", "VALUES", "EXPLAIN"} {
		if strings.HasPrefix(stmt, prefix) {
			return true
		}
	}
	return strings.Contains(stmt, " RETURNING ")
}
