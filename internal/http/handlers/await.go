package handlers

import (
	"net/http"

	"github.com/preston-bernstein/nhl-team-insights/internal/dispatch"
)

type result[T any] struct {
	value T
	err   error
}

// await submits a build and blocks until its callback fires or the request
// context ends. In the latter case the ticket is abandoned and the build is left
// to finish on its own.
func await[T any](r *http.Request, submit func(callback func(T, error)) (*dispatch.Ticket, error)) (T, error) {
	var zero T
	done := make(chan result[T], 1)
	ticket, err := submit(func(v T, err error) {
		done <- result[T]{value: v, err: err}
	})
	if err != nil {
		return zero, err
	}

	select {
	case res := <-done:
		return res.value, res.err
	case <-r.Context().Done():
		ticket.Abandon()
		return zero, r.Context().Err()
	}
}
