package repository

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrNotFound matches every *NotFoundError through errors.Is.
var ErrNotFound = errors.New("record not found")

var (
	errMissingKey       = errors.New("entity has no identifier")
	errAlreadyPersisted = errors.New("entity already has an identifier")
)

type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v: %s", e.Entity, e.ID, ErrNotFound)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type Kind string

const (
	KindConstraint   Kind = "constraint"
	KindConnectivity Kind = "connectivity"
	KindInvalid      Kind = "invalid"
	KindUnknown      Kind = "unknown"
)

// PersistenceError reports a failed write or read that is not a missing row.
type PersistenceError struct {
	Op     string
	Entity string
	Kind   Kind
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s failed (%s): %v", e.Entity, e.Op, e.Kind, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsConstraint reports whether err is a constraint violation.
func IsConstraint(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe) && pe.Kind == KindConstraint
}

// IsInvalid reports whether err was raised before touching the store.
func IsInvalid(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe) && pe.Kind == KindInvalid
}

// wrapError turns driver and gorm errors into the two error kinds callers
// handle. Errors already classified pass through untouched.
func wrapError(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	var nf *NotFoundError
	var pe *PersistenceError
	switch {
	case errors.As(err, &nf), errors.As(err, &pe):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &NotFoundError{Entity: entity}
	}
	return &PersistenceError{Op: op, Entity: entity, Kind: classify(err), Err: err}
}

func classify(err error) Kind {
	if errors.Is(err, errMissingKey) || errors.Is(err, errAlreadyPersisted) ||
		errors.Is(err, gorm.ErrMissingWhereClause) || errors.Is(err, gorm.ErrPrimaryKeyRequired) {
		return KindInvalid
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return KindConstraint
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return KindConnectivity
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1048, 1062, 1216, 1217, 1451, 1452:
			return KindConstraint
		case 2002, 2003, 2006, 2013:
			return KindConnectivity
		}
	}

	// sqlite and postgres report violations through their messages when the
	// dialector does not translate them.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed"),
		strings.Contains(msg, "foreign key constraint failed"),
		strings.Contains(msg, "not null constraint failed"),
		strings.Contains(msg, "duplicate key value"),
		strings.Contains(msg, "violates foreign key constraint"),
		strings.Contains(msg, "violates not-null constraint"):
		return KindConstraint
	case strings.Contains(msg, "database is closed"),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "broken pipe"):
		return KindConnectivity
	}
	return KindUnknown
}
