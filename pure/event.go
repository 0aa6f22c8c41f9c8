package pure

import (
	"sync/atomic"
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// EventKind classifies what happened during a call to a memoized function.
type EventKind string

const (
	// EventHit is a call answered from the store.
	EventHit EventKind = "hit"

	// EventMiss is a call whose key was absent from the store.
	EventMiss EventKind = "miss"

	// EventComputation is a completed invocation of the underlying function.
	EventComputation EventKind = "computation"

	// EventFailure is an invocation that panicked or returned an error. Nothing was stored.
	EventFailure EventKind = "failure"

	// EventUnkeyable is a variadic call whose arguments could not form a key.
	// The computation ran and its result was not stored.
	EventUnkeyable EventKind = "unkeyable"
)

// Event describes one observable step of a memoized call.
type Event struct {
	Kind EventKind
	Memo string // wrapper instance id
	Name string

	// Span covers the invocation of the underlying function.
	// It is only set for EventComputation and EventFailure.
	Span timespan.TimeSpan
}

// Duration is the length of Span.
func (e Event) Duration() time.Duration {
	return e.Span.Duration()
}

// Observer receives events from memoized functions.
// Observe is called synchronously on the caller's goroutine and must be safe for concurrent use.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }

var _ Observer = (*Stats)(nil)

// Stats counts events with atomic counters.
type Stats struct {
	hits         atomic.Int64
	misses       atomic.Int64
	computations atomic.Int64
	failures     atomic.Int64
	unkeyable    atomic.Int64
}

// Observe implements Observer.
func (s *Stats) Observe(e Event) {
	switch e.Kind {
	case EventHit:
		s.hits.Add(1)
	case EventMiss:
		s.misses.Add(1)
	case EventComputation:
		s.computations.Add(1)
	case EventFailure:
		s.failures.Add(1)
	case EventUnkeyable:
		s.unkeyable.Add(1)
	}
}

func (s *Stats) Hits() int64         { return s.hits.Load() }
func (s *Stats) Misses() int64       { return s.misses.Load() }
func (s *Stats) Computations() int64 { return s.computations.Load() }
func (s *Stats) Failures() int64     { return s.failures.Load() }
func (s *Stats) Unkeyable() int64    { return s.unkeyable.Load() }

// HitRatio returns hits / (hits + misses), or 0 before any keyed call.
func (s *Stats) HitRatio() float64 {
	hits := s.Hits()
	total := hits + s.Misses()
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// StatsSummary is a point-in-time copy of Stats.
type StatsSummary struct {
	Hits         int64   `json:"hits"`
	Misses       int64   `json:"misses"`
	Computations int64   `json:"computations"`
	Failures     int64   `json:"failures"`
	Unkeyable    int64   `json:"unkeyable"`
	HitRatio     float64 `json:"hit_ratio"`
}

func (s *Stats) Summary() StatsSummary {
	return StatsSummary{
		Hits:         s.Hits(),
		Misses:       s.Misses(),
		Computations: s.Computations(),
		Failures:     s.Failures(),
		Unkeyable:    s.Unkeyable(),
		HitRatio:     s.HitRatio(),
	}
}
