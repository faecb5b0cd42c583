package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport-level failures: the request never produced
// an HTTP response. Match with errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// StatusError is a non-2xx HTTP response. Message carries the backend's
// "error" field when the body had one, otherwise "".
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}
