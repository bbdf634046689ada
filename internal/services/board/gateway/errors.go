package gateway

import (
	"errors"
	"fmt"
)

// StatusError reports a non-2xx response from the capability API.
type StatusError struct {
	Op         string
	StatusCode int
	// Detail is the server-provided `detail` field, empty when absent.
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
}

// TransportError reports a request that never produced a usable response:
// network failure, cancellation, or an unreadable body.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AsStatusError unwraps err into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
