// Package repository defines error types that are reused across multiple
// repositories.  These values allow higher layers such as handlers to
// distinguish between failure scenarios: ErrNotFound when an update or
// delete matched no row, ErrConstraint when the database refused a
// statement because of a foreign key or unique index, and ExecutorError for
// everything else the driver or pool reports.
package repository

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound is returned when an update or delete matches no row.
var ErrNotFound = errors.New("record not found")

// ErrConstraint matches every *ConstraintError via errors.Is.
var ErrConstraint = errors.New("constraint violation")

// MySQL server error numbers treated as constraint violations.
const (
	erDupEntry            = 1062
	erBadNull             = 1048
	erNoReferencedRow     = 1216
	erRowIsReferenced     = 1217
	erRowIsReferenced2    = 1451
	erNoReferencedRow2    = 1452
	erCheckConstraintFail = 3819
)

// ConstraintError reports a statement the database rejected to keep its
// referential or uniqueness guarantees.
type ConstraintError struct {
	Op   string // repository operation, e.g. "genres.delete"
	Code uint16 // MySQL error number
	Err  error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s (mysql %d): %v", e.Op, e.Reason(), e.Code, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

func (e *ConstraintError) Is(target error) bool { return target == ErrConstraint }

// Reason is a short label for logs.
func (e *ConstraintError) Reason() string {
	switch e.Code {
	case erDupEntry:
		return "duplicate key"
	case erRowIsReferenced, erRowIsReferenced2:
		return "row is referenced"
	case erNoReferencedRow, erNoReferencedRow2:
		return "referenced row missing"
	case erBadNull:
		return "null value"
	default:
		return "check failed"
	}
}

// ExecutorError wraps connection, pool and statement failures.
type ExecutorError struct {
	Op  string
	Err error
}

func (e *ExecutorError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *ExecutorError) Unwrap() error { return e.Err }

// classify converts a driver error into the repository taxonomy.  nil and
// errors already classified pass through unchanged.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var ce *ConstraintError
	var ee *ExecutorError
	if errors.As(err, &ce) || errors.As(err, &ee) || errors.Is(err, ErrNotFound) {
		return err
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case erDupEntry, erBadNull, erNoReferencedRow, erRowIsReferenced,
			erRowIsReferenced2, erNoReferencedRow2, erCheckConstraintFail:
			return &ConstraintError{Op: op, Code: me.Number, Err: err}
		}
	}
	return &ExecutorError{Op: op, Err: err}
}

// Kind names the class of a repository error for structured logs.
func Kind(err error) string {
	var ee *ExecutorError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConstraint):
		return "constraint"
	case errors.As(err, &ee):
		return "executor"
	default:
		return "unknown"
	}
}
