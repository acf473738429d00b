package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 45 * time.Second // an overview build chains up to three upstream round trips
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
