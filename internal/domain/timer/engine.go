// Package timer implements the single pomodoro-style countdown.
//
// The engine never counts down on its own: remaining time is derived
// from an explicit wall-clock instant passed to Tick, so polling at
// irregular intervals (or twice with the same instant) is safe.
// Session state is process-lifetime only and is never persisted.
package timer

import (
	"sync"
	"time"
)

// State is the countdown lifecycle state.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

// Snapshot is a point-in-time view of the countdown.
type Snapshot struct {
	State     State         `json:"state"`
	Duration  time.Duration `json:"duration"`
	Remaining time.Duration `json:"remaining"`
}

// Engine is the assistant's single countdown session.
type Engine struct {
	mu       sync.Mutex
	state    State
	duration time.Duration
	// base is the remaining time as of the last start/resume; since is
	// the wall-clock reference it counts down from while running.
	base  time.Duration
	since time.Time
}

// NewEngine creates an idle engine.
func NewEngine() *Engine {
	return &Engine{state: StateIdle}
}

// Start begins a new countdown. Valid from Idle or Completed only.
func (e *Engine) Start(now time.Time, duration time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateIdle && e.state != StateCompleted {
		return ErrInvalidTransition
	}
	if duration <= 0 {
		return ErrInvalidDuration
	}

	e.state = StateRunning
	e.duration = duration
	e.base = duration
	e.since = now
	return nil
}

// Pause freezes the countdown. Valid from Running only.
func (e *Engine) Pause(now time.Time) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateRunning {
		return ErrInvalidTransition
	}

	e.base = e.remainingAt(now)
	e.state = StatePaused
	return nil
}

// Resume continues a paused countdown from its frozen remainder,
// re-anchoring the wall-clock reference so no time is lost or
// double-counted across the pause boundary.
func (e *Engine) Resume(now time.Time) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePaused {
		return ErrInvalidTransition
	}

	e.since = now
	e.state = StateRunning
	return nil
}

// Tick recomputes remaining time at now and detects completion by
// elapsed-time comparison. In non-Running states it is a no-op view.
func (e *Engine) Tick(now time.Time) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateRunning && e.remainingAt(now) <= 0 {
		e.state = StateCompleted
		e.base = 0
	}
	return e.snapshot(now)
}

// Reset returns the engine to Idle from any state.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = StateIdle
	e.duration = 0
	e.base = 0
	e.since = time.Time{}
}

// Status returns the current snapshot without transitioning state.
func (e *Engine) Status(now time.Time) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot(now)
}

// remainingAt derives remaining time at now, clamped to [0, duration].
// Callers must hold mu.
func (e *Engine) remainingAt(now time.Time) time.Duration {
	rem := e.base
	if e.state == StateRunning {
		rem -= now.Sub(e.since)
	}
	if rem < 0 {
		rem = 0
	}
	if rem > e.duration {
		rem = e.duration
	}
	return rem
}

func (e *Engine) snapshot(now time.Time) Snapshot {
	return Snapshot{
		State:     e.state,
		Duration:  e.duration,
		Remaining: e.remainingAt(now),
	}
}
