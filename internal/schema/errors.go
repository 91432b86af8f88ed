package schema

import "db_table_schema_mutator/internal/db"

// Error is a failed mutator operation. Message is the normalized text of the
// underlying failure; Op names the operation that failed.
type Error struct {
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Op
	}
	return e.Op + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(op string, err error) error {
	return &Error{Op: op, Message: db.Normalize(err), Err: err}
}

func opError(op, message string) error {
	return &Error{Op: op, Message: message}
}
