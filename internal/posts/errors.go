package posts

import (
	"errors"
	"fmt"
)

// ErrEmptyEndpoint is returned when a Client is built without an endpoint URL.
var ErrEmptyEndpoint = errors.New("posts endpoint is required")

// FetchError covers every way a fetch can fail: the transport could not
// complete the request, the server answered with a non-2xx status, or the
// body could not be decoded.
type FetchError struct {
	// StatusCode is the HTTP status for protocol failures, 0 otherwise.
	StatusCode int

	// Err is the underlying transport or decode error. Nil for status failures.
	Err error
}

// Error returns the user-facing message. Status failures use a synthesized
// message; everything else surfaces the underlying error text verbatim.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
	}
	if e.Err == nil {
		return "fetch failed"
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsStatus reports whether the failure came from a non-2xx response.
func (e *FetchError) IsStatus() bool {
	return e.StatusCode != 0
}

// AsFetchError extracts a FetchError from err's chain.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
