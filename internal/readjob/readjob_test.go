package readjob

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/textlens/internal/analysis"
	"github.com/verte-zerg/textlens/internal/model"
)

const sample = "The cat sat on the mat. It was a sunny day."

func TestTrackerLifecycle(t *testing.T) {
	tr := New(0)
	assert.Equal(t, StateIdle, tr.Snapshot().State)

	ticket := tr.Begin()
	assert.Equal(t, StatePending, tr.Snapshot().State)

	res := analysis.Readability(sample)
	require.True(t, tr.Complete(ticket, res))
	snap := tr.Snapshot()
	assert.Equal(t, StateComputed, snap.State)
	assert.Equal(t, res, snap.Result)

	tr.Reset()
	snap = tr.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, model.Readability{}, snap.Result)
}

func TestTrackerLastWriteWins(t *testing.T) {
	tr := New(0)
	first := tr.Begin()
	second := tr.Begin()

	assert.False(t, tr.Complete(first, analysis.Readability("stale stale stale")))
	assert.Equal(t, StatePending, tr.Snapshot().State)

	res := analysis.Readability(sample)
	assert.True(t, tr.Complete(second, res))
	assert.Equal(t, res, tr.Snapshot().Result)
	assert.False(t, tr.Complete(second, model.Readability{}), "ticket completes once")
}

func TestTrackerResetInvalidatesInFlight(t *testing.T) {
	tr := New(0)
	ticket := tr.Begin()
	tr.Reset()
	assert.False(t, tr.Complete(ticket, analysis.Readability(sample)))
	assert.Equal(t, StateIdle, tr.Snapshot().State)
}

func TestGoDeliversResult(t *testing.T) {
	tr := New(5 * time.Millisecond)
	ticket, ch := tr.Go(context.Background(), sample)

	select {
	case o := <-ch:
		require.NoError(t, o.Err)
		assert.Equal(t, ticket, o.Ticket)
		assert.True(t, o.Current)
		assert.Equal(t, analysis.Readability(sample), o.Result)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for outcome")
	}
	assert.Equal(t, StateComputed, tr.Snapshot().State)
}

func TestGoShortInputSkipsDelay(t *testing.T) {
	tr := New(time.Hour)
	_, ch := tr.Go(context.Background(), "tiny")
	select {
	case o := <-ch:
		assert.Equal(t, analysis.Insufficient(), o.Result)
		assert.True(t, o.Current)
	case <-time.After(2 * time.Second):
		t.Fatal("short input waited for the delay")
	}
}

func TestGoSupersededOutcomeNotCurrent(t *testing.T) {
	tr := New(20 * time.Millisecond)
	_, older := tr.Go(context.Background(), "first request text")
	newer, latest := tr.Go(context.Background(), sample)

	o := <-older
	assert.False(t, o.Current)
	n := <-latest
	assert.True(t, n.Current)
	assert.Equal(t, newer, n.Ticket)
	assert.Equal(t, analysis.Readability(sample), tr.Snapshot().Result)
}

func TestGoCancelled(t *testing.T) {
	tr := New(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	_, ch := tr.Go(ctx, sample)
	cancel()
	o := <-ch
	assert.ErrorIs(t, o.Err, context.Canceled)
	assert.False(t, o.Current)

	snap := tr.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Zero(t, tr.Elapsed())
}

func TestGoCancelledKeepsNewerRequestPending(t *testing.T) {
	tr := New(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	_, ch := tr.Go(ctx, sample)
	newer := tr.Begin()
	cancel()
	o := <-ch
	assert.ErrorIs(t, o.Err, context.Canceled)

	snap := tr.Snapshot()
	assert.Equal(t, StatePending, snap.State)
	assert.Equal(t, newer, snap.Ticket)
}

func TestAbandon(t *testing.T) {
	tr := New(0)
	ticket := tr.Begin()
	assert.True(t, tr.Abandon(ticket))
	assert.Equal(t, StateIdle, tr.Snapshot().State)
	assert.False(t, tr.Abandon(ticket))
	assert.False(t, tr.Complete(ticket, model.Readability{}))
}

func TestRun(t *testing.T) {
	tr := New(time.Millisecond)
	res, err := tr.Run(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, model.ToneConversational, res.Tone)
}

func TestNegativeDelay(t *testing.T) {
	assert.Zero(t, New(-time.Second).Delay())
}
