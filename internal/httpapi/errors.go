package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"gattshim/pkg/types"
)

// HTTPError is implemented by service errors that carry their own status,
// such as the monitor's not-ready (503) and rejected-call (502) errors.
type HTTPError interface {
	error
	StatusCode() int
}

// statusFor maps a service error to a response status. Errors without a
// StatusCode, wrapped or not, are 500.
func statusFor(err error) int {
	var he HTTPError
	if errors.As(err, &he) {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}

// writeJSONError writes a types.ErrorResponse with status.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}
