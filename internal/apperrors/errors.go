package apperrors

import "fmt"

// ValidationError covers malformed, missing or out-of-range input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError covers uniqueness violations.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func Conflict(format string, args ...interface{}) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError covers references to absent entities.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func NotFound(format string, args ...interface{}) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// AuthorizationError covers callers acting on resources they do not own.
type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string { return e.Msg }

func Forbidden(format string, args ...interface{}) error {
	return &AuthorizationError{Msg: fmt.Sprintf(format, args...)}
}

// StorageError wraps datastore failures not classified as any of the above.
// The wrapped error is logged server-side and never returned to clients.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
