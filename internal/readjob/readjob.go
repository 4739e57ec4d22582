// Package readjob runs the readability analysis behind a simulated
// processing delay and tracks which request is current.
package readjob

import (
	"context"
	"sync"
	"time"

	"github.com/verte-zerg/textlens/internal/analysis"
	"github.com/verte-zerg/textlens/internal/model"
)

// DefaultDelay is the simulated processing time of a readability request.
const DefaultDelay = 800 * time.Millisecond

// State is the tracker's position in the request lifecycle.
type State int

// Tracker states.
const (
	StateIdle State = iota
	StatePending
	StateComputed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateComputed:
		return "computed"
	default:
		return "idle"
	}
}

// Ticket identifies one readability request.
type Ticket uint64

// Outcome is delivered once a request finishes.
type Outcome struct {
	Ticket Ticket
	Result model.Readability
	// Current is false when a later request or a reset superseded this one.
	Current bool
	Err     error
}

// Snapshot is a consistent view of the tracker.
type Snapshot struct {
	State  State
	Ticket Ticket
	Result model.Readability
}

// Tracker holds the readability state. Only the latest ticket may complete.
type Tracker struct {
	delay time.Duration
	now   func() time.Time

	mu      sync.Mutex
	state   State
	latest  Ticket
	result  model.Readability
	started time.Time
}

// New creates a tracker with the given delay. A negative delay is treated as zero.
func New(delay time.Duration) *Tracker {
	if delay < 0 {
		delay = 0
	}
	return &Tracker{delay: delay, now: time.Now}
}

// Delay returns the configured processing delay.
func (t *Tracker) Delay() time.Duration {
	return t.delay
}

// Begin issues a new ticket and marks the tracker pending.
func (t *Tracker) Begin() Ticket {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest++
	t.state = StatePending
	t.started = t.now()
	return t.latest
}

// Complete stores result if ticket is still the latest request.
func (t *Tracker) Complete(ticket Ticket, result model.Readability) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ticket != t.latest || t.state != StatePending {
		return false
	}
	t.state = StateComputed
	t.result = result
	return true
}

// Abandon returns the tracker to idle if ticket is still the pending request.
func (t *Tracker) Abandon(ticket Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ticket != t.latest || t.state != StatePending {
		return false
	}
	t.state = StateIdle
	t.result = model.Readability{}
	return true
}

// Reset drops any cached result and invalidates in-flight tickets.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest++
	t.state = StateIdle
	t.result = model.Readability{}
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{State: t.state, Ticket: t.latest, Result: t.result}
}

// Elapsed reports how long the pending request has been running.
func (t *Tracker) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StatePending {
		return 0
	}
	return t.now().Sub(t.started)
}

// Go starts a request for text and returns its ticket and a channel that
// receives exactly one Outcome. Short input skips the delay. Cancelling ctx
// aborts the wait, returns the tracker to idle when ticket is still the
// latest and reports ctx.Err().
func (t *Tracker) Go(ctx context.Context, text string) (Ticket, <-chan Outcome) {
	ticket := t.Begin()
	out := make(chan Outcome, 1)
	go func() {
		defer close(out)
		if !analysis.TooShort(text) && t.delay > 0 {
			timer := time.NewTimer(t.delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				t.Abandon(ticket)
				out <- Outcome{Ticket: ticket, Err: ctx.Err()}
				return
			case <-timer.C:
			}
		}
		result := analysis.Readability(text)
		current := t.Complete(ticket, result)
		out <- Outcome{Ticket: ticket, Result: result, Current: current}
	}()
	return ticket, out
}

// Run is the blocking form of Go.
func (t *Tracker) Run(ctx context.Context, text string) (model.Readability, error) {
	_, ch := t.Go(ctx, text)
	o := <-ch
	if o.Err != nil {
		return model.Readability{}, o.Err
	}
	return o.Result, nil
}
