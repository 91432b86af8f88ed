package db

import (
	"context"
	"log/slog"
)

// DryRunExecutor logs every statement instead of sending it anywhere. It
// always succeeds with an empty result.
type DryRunExecutor struct {
	logger *slog.Logger
}

func NewDryRun(logger *slog.Logger) *DryRunExecutor {
	return &DryRunExecutor{logger: logger}
}

func (d *DryRunExecutor) Close() error { return nil }

func (d *DryRunExecutor) Execute(ctx context.Context, query string, params ...any) (Result, error) {
	if len(params) > 0 {
		d.logger.Info("dry-run statement", "query", query, "params", params)
	} else {
		d.logger.Info("dry-run statement", "query", query)
	}
	return Result{}, nil
}
