package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// MySQLExecutor runs statements over database/sql with the mysql driver.
type MySQLExecutor struct {
	db *sql.DB
}

func NewMySQL(dsn string) (*MySQLExecutor, error) {
	// Validate DSN early to provide actionable errors.
	if _, err := mysql.ParseDSN(dsn); err != nil {
		return nil, fmt.Errorf("invalid mysql dsn: %w", err)
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetMaxOpenConns(5)
	return &MySQLExecutor{db: db}, nil
}

func (m *MySQLExecutor) Engine() string { return "mysql" }

func (m *MySQLExecutor) Close() error { return m.db.Close() }

func (m *MySQLExecutor) Execute(ctx context.Context, query string, params ...any) (Result, error) {
	if !returnsRows(query) {
		_, err := m.db.ExecContext(ctx, query, params...)
		return Result{}, err
	}

	rows, err := m.db.QueryContext(ctx, query, params...)
	if err != nil {
		return Result{}, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return Result{}, err
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return Result{}, err
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			// The driver hands text values back as []byte.
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		out = append(out, row)
	}
	return Result{Rows: out}, rows.Err()
}
