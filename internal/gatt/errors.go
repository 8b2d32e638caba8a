package gatt

import "fmt"

// unknownStatusError reports a foreign status code outside the defined table.
type unknownStatusError struct {
	kind string
	code int64
}

func (e unknownStatusError) Error() string {
	return fmt.Sprintf("unknown %s status code %d", e.kind, e.code)
}

// ErrUnknownStatus constructs an unknownStatusError.
func ErrUnknownStatus(kind string, code int64) error { return unknownStatusError{kind: kind, code: code} }

// IsUnknownStatus reports whether err indicates an undefined status code.
func IsUnknownStatus(err error) bool {
	_, ok := err.(unknownStatusError)
	return ok
}

// profileUnavailableError signals that the native stack has no interface
// for the requested profile.
type profileUnavailableError struct{ profile string }

func (e profileUnavailableError) Error() string { return "profile unavailable: " + e.profile }

// ErrProfileUnavailable constructs a profileUnavailableError.
func ErrProfileUnavailable(profile string) error { return profileUnavailableError{profile: profile} }

// IsProfileUnavailable reports whether err indicates a missing profile interface.
func IsProfileUnavailable(err error) bool {
	_, ok := err.(profileUnavailableError)
	return ok
}
