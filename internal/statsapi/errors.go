package statsapi

import (
	"errors"
	"fmt"
)

// ErrMissingData reports that an expected entity or index is absent from a response.
var ErrMissingData = errors.New("statsapi: missing data")

// TransportError captures a failed upstream call: network failure or a non-2xx status.
type TransportError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("statsapi: GET %s: unexpected status %d: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("statsapi: GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not the expected JSON shape.
type DecodeError struct {
	Entity string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("statsapi: decode %s: %v", e.Entity, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AsTransportError attempts to unwrap an error into a TransportError.
func AsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// AsDecodeError attempts to unwrap an error into a DecodeError.
func AsDecodeError(err error) (*DecodeError, bool) {
	var dErr *DecodeError
	if errors.As(err, &dErr) {
		return dErr, true
	}
	return nil, false
}

// IsUpstreamFailure reports whether err came from the transport or the decoder.
func IsUpstreamFailure(err error) bool {
	if _, ok := AsTransportError(err); ok {
		return true
	}
	_, ok := AsDecodeError(err)
	return ok
}
