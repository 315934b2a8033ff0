package show

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lumibag/lumibag/internal/pattern"
)

// fastBPM keeps engine tests quick: one tick is about 170us.
const fastBPM = 45000

type recordSurface struct {
	frames []pattern.Frame
}

func (s *recordSurface) Apply(f *pattern.Frame) error {
	s.frames = append(s.frames, *f)
	return nil
}

func (s *recordSurface) last() pattern.Frame {
	return s.frames[len(s.frames)-1]
}

type failSurface struct{}

func (failSurface) Apply(*pattern.Frame) error { return errors.New("strip unplugged") }

func columnHeight(f pattern.Frame, x int) int {
	h := 0
	for y := 0; y < pattern.Rows; y++ {
		if f.At(x, y) != pattern.Off {
			h = y + 1
		}
	}
	return h
}

func solid(c pattern.Color) [pattern.Columns]pattern.Cycle {
	return [pattern.Columns]pattern.Cycle{{c}, {c}, {c}}
}

func TestPlayTickCount(t *testing.T) {
	surface := &recordSurface{}
	script := Script{Steps: []Step{
		{Tag: "flash", BPM: fastBPM, Count: 2, Params: pattern.Params{Colors: solid(pattern.Ruby)}},
	}}
	if err := NewEngine(surface).Play(context.Background(), script); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	// Two repetitions of a 1-beat pattern: 16 frames, the last blanked.
	if got := len(surface.frames); got != 16 {
		t.Fatalf("applied %d frames, want 16", got)
	}
	if surface.last() != (pattern.Frame{}) {
		t.Error("final flash frame should be blank")
	}
	if surface.frames[0].At(0, 0) != pattern.Ruby {
		t.Error("first frame should be lit Ruby")
	}
}

func TestPlayEmptyScript(t *testing.T) {
	if err := NewEngine(&recordSurface{}).Play(context.Background(), Script{}); err != nil {
		t.Errorf("Play(empty) error = %v", err)
	}
}

func TestPlayNoTempo(t *testing.T) {
	script := Script{Steps: []Step{{Tag: "flash"}}}
	if err := NewEngine(&recordSurface{}).Play(context.Background(), script); err == nil {
		t.Error("Play() with no tempo on the first step: error = nil")
	}
}

func TestPlayUnknownTag(t *testing.T) {
	script := Script{Steps: []Step{{Tag: "moonwalk", BPM: fastBPM, Count: 1}}}
	err := NewEngine(&recordSurface{}).Play(context.Background(), script)
	if !errors.Is(err, pattern.ErrUnknownPattern) {
		t.Errorf("Play() error = %v, want ErrUnknownPattern", err)
	}
}

func TestPlayInheritance(t *testing.T) {
	surface := &recordSurface{}
	script := Script{Steps: []Step{
		{Tag: "hold", BPM: fastBPM, Count: 1, Params: pattern.Params{Colors: solid(pattern.Dia), Hold: true}},
		// Tempo and colors unspecified: both carry over from the step above.
		{Tag: "hold", Count: 1, Params: pattern.Params{Hold: true}},
	}}
	if err := NewEngine(surface).Play(context.Background(), script); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if got := len(surface.frames); got != 16 {
		t.Fatalf("applied %d frames, want 16", got)
	}
	if last := surface.last(); last.At(0, 0) != pattern.Dia {
		t.Errorf("inherited color = %v, want Dia", last.At(0, 0))
	}
}

func TestPlayLoopFlag(t *testing.T) {
	// Every repetition runs with the loop flag, the last included: the
	// default movement's tail folds back down each time through instead
	// of holding full height at the end.
	surface := &recordSurface{}
	script := Script{Steps: []Step{
		{Tag: "normal", BPM: fastBPM, Count: 2, Params: pattern.Params{Colors: solid(pattern.You)}},
	}}
	if err := NewEngine(surface).Play(context.Background(), script); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	period := 16
	if got := columnHeight(surface.frames[period-1], 0); got != 4 {
		t.Errorf("first repetition tail height = %d, want 4", got)
	}
	if got := columnHeight(surface.frames[2*period-1], 0); got != 4 {
		t.Errorf("final repetition tail height = %d, want 4", got)
	}
}

func TestPlayCancellation(t *testing.T) {
	surface := &recordSurface{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	script := Script{Steps: []Step{
		{Tag: "hold", BPM: 1, Count: 1, Params: pattern.Params{Colors: solid(pattern.Mari), Hold: true}},
	}}
	err := NewEngine(surface).Play(ctx, script)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Play() error = %v, want context.Canceled", err)
	}
	// The tick that was in flight still rendered: the surface keeps the
	// last applied frame.
	if len(surface.frames) != 1 {
		t.Fatalf("applied %d frames before cancel, want 1", len(surface.frames))
	}
	if last := surface.last(); last.At(0, 0) != pattern.Mari {
		t.Error("surface should keep the last rendered frame")
	}
}

func TestPlaySurfaceError(t *testing.T) {
	script := Script{Steps: []Step{
		{Tag: "flash", BPM: fastBPM, Count: 1, Params: pattern.Params{Colors: solid(pattern.Eli)}},
	}}
	if err := NewEngine(failSurface{}).Play(context.Background(), script); err == nil {
		t.Error("Play() with failing surface: error = nil")
	}
}

func TestPlayInitialOffset(t *testing.T) {
	if testing.Short() {
		t.Skip("wall-clock timing")
	}
	script := Script{
		InitialOffset: 30 * time.Millisecond,
		Steps: []Step{
			{Tag: "flash", BPM: fastBPM, Count: 1, Params: pattern.Params{Colors: solid(pattern.Rin)}},
		},
	}
	start := time.Now()
	if err := NewEngine(&recordSurface{}).Play(context.Background(), script); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("Play() returned after %v, want at least the 30ms lead-in", elapsed)
	}
}
