package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

// Normalize extracts the best human-readable message from a driver error:
// the server-provided message when the driver exposes one, the plain
// Error() text otherwise. nil yields the empty string.
func Normalize(err error) string {
	if err == nil {
		return ""
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Message != "" {
		return pgErr.Message
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Message != "" {
		return myErr.Message
	}
	return err.Error()
}
