package aggregates

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
)

var (
	// ErrValidation indicates caller input validation failure.
	ErrValidation = errors.New("aggregate validation")
	// ErrDuplicateName indicates a name already owned by another row.
	ErrDuplicateName = errors.New("aggregate duplicate name")
	// ErrInUse indicates a delete blocked by a referencing link.
	ErrInUse = errors.New("aggregate in use")
)

// ValidationError tags an error as validation failure.
func ValidationError(msg string) error {
	return errors.Join(ErrValidation, errors.New(strings.TrimSpace(msg)))
}

// DuplicateNameError tags an error as a name uniqueness violation.
func DuplicateNameError(msg string) error {
	return errors.Join(ErrDuplicateName, errors.New(strings.TrimSpace(msg)))
}

// InUseError tags an error as a delete blocked by a dependent row.
func InUseError(msg string) error {
	return errors.Join(ErrInUse, errors.New(strings.TrimSpace(msg)))
}

// MapError maps infrastructure/domain failures into aggregate error codes.
// Anything unrecognized is a storage failure.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var aggErr *domainagg.Error
	if errors.As(err, &aggErr) {
		return err
	}
	switch {
	case errors.Is(err, ErrValidation):
		return domainagg.NewError(domainagg.CodeValidation, op, taggedMessage(err, ErrValidation), err)
	case errors.Is(err, ErrDuplicateName):
		return domainagg.NewError(domainagg.CodeDuplicateName, op, taggedMessage(err, ErrDuplicateName), err)
	case errors.Is(err, ErrInUse):
		return domainagg.NewError(domainagg.CodeInUse, op, taggedMessage(err, ErrInUse), err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainagg.Wrap(domainagg.CodeNotFound, op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return domainagg.Wrap(domainagg.CodeStorage, op, err)
	}

	switch {
	case isUniqueViolation(err):
		return domainagg.NewError(domainagg.CodeDuplicateName, op, "name already exists", err)
	case isForeignKeyViolation(err):
		return domainagg.NewError(domainagg.CodeInUse, op, "row is referenced by another entity", err)
	default:
		return domainagg.Wrap(domainagg.CodeStorage, op, err)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.TrimSpace(pgErr.Code) == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.TrimSpace(pgErr.Code) == "23503"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) && liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// taggedMessage strips the sentinel prefix errors.Join adds.
func taggedMessage(err, tag error) string {
	msg := err.Error()
	msg = strings.TrimPrefix(msg, tag.Error())
	return strings.TrimSpace(msg)
}

func storageError(op string, err error) error {
	return domainagg.Wrap(domainagg.CodeStorage, op, err)
}

func notFound(op, msg string) error {
	return domainagg.NewError(domainagg.CodeNotFound, op, msg, nil)
}

func notImplemented(op string) error {
	return domainagg.NewError(domainagg.CodeNotImplemented, op, "update is not supported", nil)
}
