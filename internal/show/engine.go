package show

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lumibag/lumibag/internal/logging"
	"github.com/lumibag/lumibag/internal/pattern"
)

// Surface receives complete LED frames. Implementations include the SPI
// LED strip, the terminal simulator and the logging surface used by tests.
type Surface interface {
	Apply(f *pattern.Frame) error
}

// Step is one movement of a script: a pattern tag plus the tempo, palette
// and repeat count to run it with. A zero BPM, a zero Count or a nil column
// cycle means "same as the previous step"; the engine resolves inheritance
// while playing.
type Step struct {
	Tag    string
	BPM    float64
	Count  int
	Params pattern.Params
}

// Script is a resolved, playable song: an optional lead-in silence followed
// by the ordered movement steps.
type Script struct {
	InitialOffset time.Duration
	Steps         []Step
}

// Engine plays scripts against a surface on the show clock.
type Engine struct {
	surface Surface
	log     *zap.Logger
}

// NewEngine creates an engine rendering to the given surface.
func NewEngine(surface Surface) *Engine {
	return &Engine{surface: surface, log: logging.GetLogger()}
}

// Play runs the script to completion. Each tick renders the current
// movement into the frame, applies it to the surface and waits out the
// tick on the clock. Cancellation is cooperative at tick granularity: the
// surface is left showing the last rendered frame.
func (e *Engine) Play(ctx context.Context, script Script) error {
	if len(script.Steps) == 0 {
		return nil
	}
	if script.Steps[0].BPM <= 0 {
		return fmt.Errorf("show: step 0 (%s): no tempo", script.Steps[0].Tag)
	}

	if script.InitialOffset > 0 {
		timer := time.NewTimer(script.InitialOffset)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	ticker := NewTicker(script.Steps[0].BPM)
	var frame pattern.Frame
	prev := script.Steps[0]

	for i, raw := range script.Steps {
		step := inherit(prev, raw)
		prev = step

		pat, err := pattern.Lookup(step.Tag)
		if err != nil {
			return fmt.Errorf("show: step %d: %w", i, err)
		}
		ticker.SetBPM(step.BPM)
		period := pat.Period()

		e.log.Debug("playing movement",
			zap.Int("step", i),
			zap.String("tag", step.Tag),
			zap.Float64("bpm", step.BPM),
			zap.Int("count", step.Count),
		)

		// Movements always render their looping variant, even on the
		// final repetition.
		p := step.Params
		p.Loop = true
		for rep := 0; rep < step.Count; rep++ {
			for tick := 0; tick < period; tick++ {
				pat.Render(&frame, tick, period, p)
				if err := e.surface.Apply(&frame); err != nil {
					return fmt.Errorf("show: step %d: apply frame: %w", i, err)
				}
				if err := ticker.Wait(ctx); err != nil {
					return err
				}
			}
		}
	}

	e.log.Info("script finished",
		zap.Int64("ticks", ticker.Ticks()),
		zap.Duration("drift", ticker.Drift()),
	)
	return nil
}

// inherit fills a step's unspecified fields from the previous step.
func inherit(prev, s Step) Step {
	if s.BPM <= 0 {
		s.BPM = prev.BPM
	}
	if s.Count <= 0 {
		s.Count = 1
	}
	for x := range s.Params.Colors {
		if s.Params.Colors[x] == nil {
			s.Params.Colors[x] = prev.Params.Colors[x]
		}
	}
	return s
}
