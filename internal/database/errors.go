package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/lib/pq"

	"greenlab-checklist-be/internal/apperrors"
)

// PostgreSQL error codes. This file is the only place that knows them;
// everything above the repositories works with the apperrors categories.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// ClassifyError maps a storage error onto the apperrors taxonomy. Errors it
// does not recognize are returned unchanged and end up as a generic internal
// error at the HTTP boundary.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case codeUniqueViolation:
			return apperrors.ErrDuplicate
		case codeForeignKeyViolation:
			return apperrors.ErrReferenced
		}
		return err
	}

	if errors.Is(err, driver.ErrBadConn) {
		return apperrors.ErrConnection
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return apperrors.ErrConnection
	}

	return err
}
