package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"db_table_schema_mutator/internal/config"
)

// Open builds a connection-backed executor for the configured engine.
func Open(ctx context.Context, cfg config.DBConfig) (Conn, error) {
	if cfg.DSN == "" {
		return nil, errors.New("database dsn is required")
	}
	switch strings.ToLower(cfg.Engine) {
	case "postgres":
		return NewPostgres(ctx, cfg.DSN)
	case "mysql":
		return NewMySQL(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported engine %s", cfg.Engine)
	}
}
