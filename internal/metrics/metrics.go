package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures in-memory metrics about upstream fetches and degraded view sections,
// and forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu       sync.Mutex
	stats    map[string]*endpointStats
	degraded map[string]int
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:    make(map[string]*endpointStats),
		degraded: make(map[string]int),
		otel:     otel,
	}
}

// RecordFetch increments counters for an upstream call and stores the last observed latency.
func (r *Recorder) RecordFetch(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(endpoint, duration, err)
	}
}

// RecordDegraded counts a view-model section delivered without its data.
func (r *Recorder) RecordDegraded(section string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.degraded[section]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDegraded(section)
	}
}

// Snapshot is a copy of the current stats for one endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[endpoint]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// FetchCalls returns the total calls recorded for an endpoint.
func (r *Recorder) FetchCalls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// FetchErrors returns the failed calls recorded for an endpoint.
func (r *Recorder) FetchErrors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}

// DegradedCount returns how often a section was delivered degraded.
func (r *Recorder) DegradedCount(section string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.degraded[section]
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
