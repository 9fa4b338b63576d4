package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// ErrNotFound reports a targeted operation on a uuid that does not exist.
	// Plain lookups return nil instead of this error.
	ErrNotFound = errors.New("project not found")

	// ErrNotConnected reports an operation on a store whose Connect failed or
	// was never called and could not be recovered.
	ErrNotConnected = errors.New("catalog not connected")

	// ErrConfig reports an unusable catalog location, raised before any
	// connection attempt.
	ErrConfig = errors.New("catalog configuration error")
)

// Error is the single error kind every storage engine failure is re-raised
// as. It carries the failing statement for diagnosis; the raw driver error is
// reachable through Unwrap but its concrete type never leaks into the API.
type Error struct {
	Op    string        // Operation that failed
	Query string        // SQL statement (if applicable)
	Args  []interface{} // Bound arguments (if applicable)
	Err   error         // Underlying error
}

func (e *Error) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("catalog: %s", e.Op))

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if e.Query != "" {
		parts = append(parts, fmt.Sprintf("query=%q", e.Query))
	}

	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for Error type
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return errors.Is(e.Err, target)
	}

	if t.Op != "" && e.Op == t.Op {
		return true
	}

	return errors.Is(e.Err, t.Err)
}

// wrapError converts a driver-level failure into a catalog Error. The nil
// passthrough keeps call sites to a single line.
func wrapError(op, query string, args []interface{}, err error) error {
	if err == nil {
		return nil
	}
	return &Error{
		Op:    op,
		Query: query,
		Args:  args,
		Err:   err,
	}
}

// notFoundError builds the ErrNotFound variant for targeted updates.
func notFoundError(op, uuid string) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: %s", ErrNotFound, uuid),
	}
}

// ValidationError reports a malformed upsert payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}
