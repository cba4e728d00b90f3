package dribbble

import (
	"fmt"
	"net/http"
)

// ErrorKind distinguishes client-side precondition failures from remote
// transport failures.
type ErrorKind string

const (
	// KindUnauthorized marks precondition failures raised before any
	// network call is issued.
	KindUnauthorized ErrorKind = "unauthorized"
	// KindTransport marks non-2xx responses from the remote API.
	KindTransport ErrorKind = "transport"
)

// Error is the typed error surface of the client. Code carries an HTTP-style
// status: 403 for missing-token preconditions, the remote status otherwise.
type Error struct {
	Kind    ErrorKind
	Message string
	Code    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("dribbble: %s (%d)", e.Message, e.Code)
}

// Is makes errors.Is match on kind and code, so callers can compare against
// ErrMissingToken without identity.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// ErrMissingToken is returned by protected methods invoked before an access
// token has been installed.
var ErrMissingToken = &Error{
	Kind:    KindUnauthorized,
	Message: "access token is not set",
	Code:    http.StatusForbidden,
}
