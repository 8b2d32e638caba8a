package monitor

import (
	"fmt"
	"net/http"
)

// notReadyError is returned for operations that need an initialized profile.
type notReadyError struct{ state string }

func (e notReadyError) Error() string { return "gatt profile not ready: " + e.state }

// StatusCode lets the HTTP layer map the error to 503.
func (e notReadyError) StatusCode() int { return http.StatusServiceUnavailable }

// IsNotReady reports whether err indicates an uninitialized profile.
func IsNotReady(err error) bool {
	_, ok := err.(notReadyError)
	return ok
}

// initFailedError reports that the native stack rejected initialization.
type initFailedError struct{}

func (initFailedError) Error() string { return "gatt profile initialization failed" }

// IsInitFailed reports whether err indicates a rejected initialization.
func IsInitFailed(err error) bool {
	_, ok := err.(initFailedError)
	return ok
}

// rejectedError reports a facade call the native stack did not accept.
type rejectedError struct {
	op     string
	status string
}

func (e rejectedError) Error() string { return fmt.Sprintf("%s rejected: %s", e.op, e.status) }

func (e rejectedError) StatusCode() int { return http.StatusBadGateway }
