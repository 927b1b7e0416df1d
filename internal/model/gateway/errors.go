package gateway

import (
	"github.com/pkg/errors"
)

var (
	ErrNotFound         = errors.New("row not found")
	ErrUnknownTable     = errors.New("unknown table")
	ErrUnknownAggregate = errors.New("unknown aggregate")
	ErrUnknownOrder     = errors.New("unsupported order")
	ErrForbidden        = errors.New("row belongs to another user")
)

// Error is a failed gateway call: the opaque remote cause plus a message fit for
// the user.
type Error struct {
	Op      string
	Message string
	Err     error
}

func Fail(op string, err error, message string) *Error {
	return &Error{Op: op, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Cause() error { return e.Err }

// UserMessage returns the presentable message of err when it is a gateway Error.
func UserMessage(err error, fallback string) string {
	var gwErr *Error
	if errors.As(err, &gwErr) && gwErr.Message != "" {
		return gwErr.Message
	}
	return fallback
}
