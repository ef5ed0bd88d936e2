package domain

import (
	"errors"
	"fmt"
)

var ErrCommentNotFound = errors.New("comment not found")
var ErrUserNotFound = errors.New("user not found")
var ErrSessionNotFound = errors.New("session not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// InvalidOperationError reports a repository operation that was rejected
// before or during a write: missing required fields, nil preferences, or an
// underlying write failure such as a constraint violation. The original error
// type is not preserved, only its message.
type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return e.Reason
}

// NewInvalidOperation builds an InvalidOperationError with a formatted reason.
func NewInvalidOperation(format string, args ...any) *InvalidOperationError {
	return &InvalidOperationError{Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidOperation reports whether err is an InvalidOperationError.
func IsInvalidOperation(err error) bool {
	var ioe *InvalidOperationError
	return errors.As(err, &ioe)
}
