package statsapi

import "time"

const (
	defaultHTTPTimeout = 10 * time.Second
	// errorBodyLimit caps how much of a failed response body is kept in the error.
	errorBodyLimit = 512
)
