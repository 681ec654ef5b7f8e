package apierr

import (
	"errors"
	"fmt"
	"net/http"

	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
)

// Error carries the HTTP status and stable code a handler should answer with.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// FromError maps an aggregate error onto the status and code handlers answer with.
// Uncoded errors are treated as storage failures.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	code := domainagg.CodeOf(err)
	switch code {
	case domainagg.CodeValidation:
		return New(http.StatusUnprocessableEntity, string(code), err)
	case domainagg.CodeDuplicateName, domainagg.CodeInUse:
		return New(http.StatusConflict, string(code), err)
	case domainagg.CodeNotFound:
		return New(http.StatusNotFound, string(code), err)
	case domainagg.CodeNotImplemented:
		return New(http.StatusNotImplemented, string(code), err)
	default:
		return New(http.StatusInternalServerError, string(domainagg.CodeStorage), err)
	}
}
