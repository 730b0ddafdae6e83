// Package engine turns store contents plus the current time into the day's
// display state and resolves per-date schedule data. It holds no state of
// its own; everything derives from store reads and the injected clock.
package engine

import (
	"time"

	"github.com/ymatsuo/wasuremono/internal/constants"
	"github.com/ymatsuo/wasuremono/internal/storage"
)

// Clock abstracts time retrieval so the mode classifier is deterministic in
// tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

type Engine struct {
	store storage.Provider
	clock Clock
}

// New creates an engine on the system clock.
func New(store storage.Provider) *Engine {
	return NewWithClock(store, RealClock{})
}

// NewWithClock creates an engine with an explicit time source.
func NewWithClock(store storage.Provider, clock Clock) *Engine {
	return &Engine{
		store: store,
		clock: clock,
	}
}

// Today returns the current date key (YYYY-MM-DD). The day boundary is
// implicit: mode is recomputed fresh on every query against this key.
func (e *Engine) Today() string {
	return e.clock.Now().Format(constants.DateFormat)
}
