package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresExecutor runs statements against a pgx connection pool.
type PostgresExecutor struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dsn string) (*PostgresExecutor, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &PostgresExecutor{pool: pool}, nil
}

func (p *PostgresExecutor) Engine() string { return "postgres" }

func (p *PostgresExecutor) Close() error {
	p.pool.Close()
	return nil
}

func (p *PostgresExecutor) Execute(ctx context.Context, query string, params ...any) (Result, error) {
	if !returnsRows(query) {
		_, err := p.pool.Exec(ctx, query, params...)
		return Result{}, err
	}

	rows, err := p.pool.Query(ctx, query, params...)
	if err != nil {
		return Result{}, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var out []Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return Result{}, err
		}
		row := make(Row, len(fields))
		for i, fd := range fields {
			row[fd.Name] = values[i]
		}
		out = append(out, row)
	}
	return Result{Rows: out}, rows.Err()
}
