package api

import "errors"

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// Error carries the backend's human-readable message together with a
// matchable sentinel kind. Error() returns the message verbatim so the
// UI layers can surface it unchanged; callers discriminate with
// errors.Is against the sentinels above.
type Error struct {
	Message string
	Kind    error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }
