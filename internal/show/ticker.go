package show

import (
	"context"
	"time"

	"github.com/lumibag/lumibag/internal/logging"
	"github.com/lumibag/lumibag/internal/metrics"
	"github.com/lumibag/lumibag/internal/pattern"
)

// TickInterval returns the duration of one tick at the given tempo. The
// clock always runs at 8 ticks per beat.
func TickInterval(bpm float64) time.Duration {
	return time.Duration(float64(time.Minute) / (bpm * pattern.TicksPerBeat))
}

// Ticker is the show clock. Deadlines accumulate absolutely: each deadline
// is the previous deadline plus the tick interval, never recomputed from
// the current time, so rendering cost inside a tick does not stretch the
// schedule. A tick that misses its deadline is recorded as drift and the
// schedule continues from the missed deadline; there is no catch-up, so an
// overrun shifts the phase of everything after it.
type Ticker struct {
	interval time.Duration
	next     time.Time
	ticks    int64
	drift    time.Duration
}

// NewTicker creates a clock at the given tempo. The deadline chain starts
// on the first Wait call.
func NewTicker(bpm float64) *Ticker {
	return &Ticker{interval: TickInterval(bpm)}
}

// SetBPM changes the tempo from the next tick onward. The deadline chain
// is kept intact: the pending deadline is unchanged and only subsequent
// intervals use the new tempo.
func (t *Ticker) SetBPM(bpm float64) {
	t.interval = TickInterval(bpm)
}

// Wait blocks until the next tick deadline. If the deadline has already
// passed it returns immediately, adding the overrun to the drift total.
// Cancellation is observed while sleeping.
func (t *Ticker) Wait(ctx context.Context) error {
	if t.next.IsZero() {
		t.next = time.Now()
	}
	t.next = t.next.Add(t.interval)
	t.ticks++
	metrics.TicksTotal.Inc()

	remaining := t.next.Sub(time.Now())
	if remaining <= 0 {
		overrun := -remaining
		t.drift += overrun
		metrics.TickOverruns.Inc()
		metrics.DriftSeconds.Add(overrun.Seconds())
		logging.LogTickOverrun(int(t.ticks), overrun)
		return ctx.Err()
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Ticks returns the number of ticks elapsed since the clock started.
func (t *Ticker) Ticks() int64 {
	return t.ticks
}

// Drift returns the accumulated overrun across all missed deadlines.
func (t *Ticker) Drift() time.Duration {
	return t.drift
}
