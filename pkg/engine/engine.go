// Package engine derives recommendations, action plans and situational
// commentary from a backlog snapshot. All functions are pure transformations
// of their input: the only ambient dependencies are a clock and a random
// source, both injectable for tests. The engine keeps no state between calls
// and never mutates the snapshot, so concurrent invocations are safe.
package engine

import (
	"math/rand"
	"time"
)

// Engine computes recommendations, plans and messages from a backlog snapshot
type Engine struct {
	now  func() time.Time
	rand func(n int) int // returns a value in [0, n)
}

// Option configures the engine
type Option func(*Engine)

// WithClock sets the time source, used for age calculations, day-of-week
// gating and hour-of-day greeting buckets
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRand sets the random source used for phrase selection
func WithRand(fn func(n int) int) Option {
	return func(e *Engine) { e.rand = fn }
}

// New creates an engine with wall clock and math/rand defaults
func New(opts ...Option) *Engine {
	e := &Engine{now: time.Now, rand: rand.Intn}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
