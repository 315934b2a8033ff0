package show

import (
	"context"
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		bpm  float64
		want time.Duration
	}{
		{60, 125 * time.Millisecond},
		{120, 62500 * time.Microsecond},
		{180, time.Minute / (180 * 8)},
	}
	for _, tt := range tests {
		if got := TickInterval(tt.bpm); got != tt.want {
			t.Errorf("TickInterval(%v) = %v, want %v", tt.bpm, got, tt.want)
		}
	}
}

func TestWaitSchedule(t *testing.T) {
	if testing.Short() {
		t.Skip("wall-clock timing")
	}
	// 1500 bpm gives a 5ms tick. Ten ticks should take about 50ms even
	// though each Wait call starts at a slightly different moment: the
	// deadline chain absorbs the jitter.
	ticker := NewTicker(1500)
	start := time.Now()
	for i := 0; i < 10; i++ {
		if err := ticker.Wait(context.Background()); err != nil {
			t.Fatalf("Wait() error = %v", err)
		}
	}
	elapsed := time.Since(start)
	if elapsed < 45*time.Millisecond || elapsed > 120*time.Millisecond {
		t.Errorf("10 ticks took %v, want about 50ms", elapsed)
	}
	if ticker.Ticks() != 10 {
		t.Errorf("Ticks() = %d, want 10", ticker.Ticks())
	}
}

func TestWaitOverrunRecordsDrift(t *testing.T) {
	if testing.Short() {
		t.Skip("wall-clock timing")
	}
	ticker := NewTicker(1500)
	if err := ticker.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	// Miss several deadlines, then check the next Wait does not block and
	// the overrun landed in the drift total.
	time.Sleep(50 * time.Millisecond)
	start := time.Now()
	if err := ticker.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() after stall error = %v", err)
	}
	if took := time.Since(start); took > 2*time.Millisecond {
		t.Errorf("Wait() after missed deadline blocked for %v", took)
	}
	if d := ticker.Drift(); d < 40*time.Millisecond {
		t.Errorf("Drift() = %v, want at least 40ms", d)
	}
}

func TestWaitNoDriftCorrection(t *testing.T) {
	if testing.Short() {
		t.Skip("wall-clock timing")
	}
	// After a stall the schedule continues phase-shifted: subsequent ticks
	// run at the normal interval, not compressed to catch up.
	ticker := NewTicker(1500)
	_ = ticker.Wait(context.Background())
	time.Sleep(30 * time.Millisecond)
	_ = ticker.Wait(context.Background()) // absorbs the stall

	start := time.Now()
	for i := 0; i < 4; i++ {
		if err := ticker.Wait(context.Background()); err != nil {
			t.Fatalf("Wait() error = %v", err)
		}
	}
	elapsed := time.Since(start)
	if elapsed < 15*time.Millisecond {
		t.Errorf("4 ticks after stall took %v, want about 20ms (no catch-up)", elapsed)
	}
}

func TestWaitCancellation(t *testing.T) {
	// 1 bpm gives a 7.5s tick; cancellation must interrupt the sleep.
	ticker := NewTicker(1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- ticker.Wait(ctx)
	}()
	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Wait() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Wait() did not observe cancellation")
	}
}

func TestSetBPMKeepsChain(t *testing.T) {
	if testing.Short() {
		t.Skip("wall-clock timing")
	}
	// Retuning mid-chain leaves the pending deadline alone; only later
	// intervals change.
	ticker := NewTicker(1500) // 5ms
	start := time.Now()
	_ = ticker.Wait(context.Background())
	ticker.SetBPM(300) // 25ms
	for i := 0; i < 4; i++ {
		_ = ticker.Wait(context.Background())
	}
	elapsed := time.Since(start)
	want := 5*time.Millisecond + 4*25*time.Millisecond
	if elapsed < want-10*time.Millisecond || elapsed > want+50*time.Millisecond {
		t.Errorf("elapsed = %v, want about %v", elapsed, want)
	}
}
