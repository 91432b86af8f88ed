// Package migrate sequences a caller-supplied migration procedure over a
// schema mutator and normalizes its failure into a single error kind.
package migrate

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"db_table_schema_mutator/internal/db"
	"db_table_schema_mutator/internal/schema"
)

// Procedure is the migration body. It receives the mutator it should drive
// and reports failure through its error.
type Procedure func(ctx context.Context, m *schema.Mutator) error

// Error is a failed migration run. Its message is exactly the normalized
// message of the procedure's failure; the run context lives in the fields,
// not in the text.
type Error struct {
	RunID   uuid.UUID
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

type Runner struct {
	logger *slog.Logger
}

func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run invokes proc exactly once with the mutator. Failures are wrapped into
// *Error and returned immediately; nothing is retried or rolled back.
func (r *Runner) Run(ctx context.Context, m *schema.Mutator, proc Procedure) error {
	runID := uuid.New()
	r.logger.Info("migration started", "run_id", runID, "table", m.Table())

	if err := proc(ctx, m); err != nil {
		msg := db.Normalize(err)
		r.logger.Error("migration failed", "run_id", runID, "table", m.Table(), "error", msg)
		return &Error{RunID: runID, Message: msg, Err: err}
	}

	r.logger.Info("migration finished", "run_id", runID, "table", m.Table())
	return nil
}
