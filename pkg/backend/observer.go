package backend

import (
	"net/http"
	"sync/atomic"
	"time"
)

// Observer receives hooks for handled requests and resets. Implementations
// can log, count, or forward to a metrics backend.
type Observer interface {
	// OnRequest fires after each dispatched request with its final status
	// and processing duration (excluding the simulated latency).
	OnRequest(method, collection string, status int, d time.Duration)

	// OnReset fires after the database is restored to its seed state.
	OnReset(collections []string)
}

// NoopObserver discards all hooks.
type NoopObserver struct{}

func (NoopObserver) OnRequest(method, collection string, status int, d time.Duration) {}
func (NoopObserver) OnReset(collections []string)                                     {}

// MetricsObserver counts handled requests. All counters are atomic, so one
// observer may be shared by concurrent callers.
type MetricsObserver struct {
	gets      atomic.Int64
	posts     atomic.Int64
	puts      atomic.Int64
	deletes   atomic.Int64
	other     atomic.Int64
	errors    atomic.Int64
	resets    atomic.Int64
	latencyNs atomic.Int64
}

// NewMetricsObserver creates an empty metrics observer.
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{}
}

func (m *MetricsObserver) OnRequest(method, collection string, status int, d time.Duration) {
	switch method {
	case http.MethodGet:
		m.gets.Add(1)
	case http.MethodPost:
		m.posts.Add(1)
	case http.MethodPut:
		m.puts.Add(1)
	case http.MethodDelete:
		m.deletes.Add(1)
	default:
		m.other.Add(1)
	}
	if status >= 400 {
		m.errors.Add(1)
	}
	m.latencyNs.Add(int64(d))
}

func (m *MetricsObserver) OnReset(collections []string) {
	m.resets.Add(1)
}

// Snapshot returns a point-in-time copy of the counters.
func (m *MetricsObserver) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Gets:         m.gets.Load(),
		Posts:        m.posts.Load(),
		Puts:         m.puts.Load(),
		Deletes:      m.deletes.Load(),
		Other:        m.other.Load(),
		Errors:       m.errors.Load(),
		Resets:       m.resets.Load(),
		TotalLatency: time.Duration(m.latencyNs.Load()),
	}
}

// MetricsSnapshot is a point-in-time view of a MetricsObserver.
type MetricsSnapshot struct {
	Gets         int64         `json:"gets"`
	Posts        int64         `json:"posts"`
	Puts         int64         `json:"puts"`
	Deletes      int64         `json:"deletes"`
	Other        int64         `json:"other"`
	Errors       int64         `json:"errors"`
	Resets       int64         `json:"resets"`
	TotalLatency time.Duration `json:"totalLatencyNs"`
}

// TotalRequests returns the number of handled requests across methods.
func (s MetricsSnapshot) TotalRequests() int64 {
	return s.Gets + s.Posts + s.Puts + s.Deletes + s.Other
}
