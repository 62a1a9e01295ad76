package backend

import (
	"errors"
	"fmt"
)

// APIError is a declared failure: the backend answered with a non-success
// status and (usually) a structured error payload. Anything else coming out
// of the client is a transport failure.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}

// DeclaredMessage returns the server-supplied error message when err is a
// declared failure carrying one. Callers fall back to a generic message
// otherwise.
func DeclaredMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// IsDeclared reports whether err is a declared failure of any shape.
func IsDeclared(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
