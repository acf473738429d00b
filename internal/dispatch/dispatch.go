// Package dispatch runs builds on worker goroutines and delivers their results
// through one completion goroutine, so callbacks never run concurrently.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nhl-team-insights/internal/logging"
)

// ErrClosed is returned by Submit after Close.
var ErrClosed = errors.New("dispatch: dispatcher closed")

type completion struct {
	ticket  *Ticket
	deliver func()
}

// Dispatcher owns the completion queue.
type Dispatcher struct {
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
	nextID uint64
	wg     sync.WaitGroup

	queue     chan completion
	done      chan struct{}
	closeOnce sync.Once
}

// Ticket tracks one submitted build.
type Ticket struct {
	id        uint64
	abandoned atomic.Bool
	delivered atomic.Bool
}

// ID is the submission sequence number, starting at 1.
func (t *Ticket) ID() uint64 { return t.id }

// Abandon marks the request dead. Its result is discarded when it completes.
// Calling it more than once, or after delivery, has no effect.
func (t *Ticket) Abandon() { t.abandoned.Store(true) }

// Abandoned reports whether Abandon was called.
func (t *Ticket) Abandoned() bool { return t.abandoned.Load() }

// Delivered reports whether the callback ran.
func (t *Ticket) Delivered() bool { return t.delivered.Load() }

// New starts the completion goroutine. Call Close to stop it.
func New(logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan completion),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

// Submit runs build on its own goroutine and hands the result to callback on
// the completion goroutine. A started build is never cancelled: it receives a
// context that keeps ctx's values but not its cancellation.
func Submit[T any](ctx context.Context, d *Dispatcher, build func(context.Context) (T, error), callback func(T, error)) (*Ticket, error) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil, ErrClosed
	}
	d.nextID++
	ticket := &Ticket{id: d.nextID}
	d.wg.Add(1)
	d.mu.Unlock()

	buildCtx := context.WithoutCancel(ctx)
	go func() {
		defer d.wg.Done()
		v, err := build(buildCtx)
		d.queue <- completion{
			ticket:  ticket,
			deliver: func() { callback(v, err) },
		}
	}()
	return ticket, nil
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for c := range d.queue {
		if c.ticket.Abandoned() {
			logging.Debug(d.logger, "discarding result of abandoned request", slog.Uint64("ticket", c.ticket.id))
			continue
		}
		d.deliver(c)
	}
}

func (d *Dispatcher) deliver(c completion) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error(d.logger, "completion callback panicked", fmt.Errorf("panic: %v", r), slog.Uint64("ticket", c.ticket.id))
		}
	}()
	c.ticket.delivered.Store(true)
	c.deliver()
}

// Closed reports whether Close has been called.
func (d *Dispatcher) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// Close stops accepting work, waits for in-flight builds, and returns once
// every pending completion has been delivered or discarded.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		d.mu.Unlock()

		d.wg.Wait()
		close(d.queue)
		<-d.done
	})
}
