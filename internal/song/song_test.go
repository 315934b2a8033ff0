package song

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lumibag/lumibag/internal/pattern"
)

const sampleScript = `
title: Mirai Ticket
filename: mirai-ticket.wav
initial_offset: 0.25
patterns:
  - type: slow
    bpm: 87
    left: chika
    center: aqours rainbow
    right: [dia, kanan, mari]
    count: 2
  - type: normal
    count: 4
    kwargs:
      hold: true
  - type: spin
    bpm: 174
    kwargs:
      rainbow: true
      reverse: true
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sampleScript))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Title != "Mirai Ticket" {
		t.Errorf("Title = %q, want %q", s.Title, "Mirai Ticket")
	}
	if s.Filename != "mirai-ticket.wav" {
		t.Errorf("Filename = %q", s.Filename)
	}
	if s.Script.InitialOffset != 250*time.Millisecond {
		t.Errorf("InitialOffset = %v, want 250ms", s.Script.InitialOffset)
	}
	if len(s.Script.Steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(s.Script.Steps))
	}

	first := s.Script.Steps[0]
	if first.Tag != "slow" || first.BPM != 87 || first.Count != 2 {
		t.Errorf("step 0 = %+v", first)
	}
	if got := first.Params.Colors[0]; len(got) != 1 || got[0] != pattern.Chika {
		t.Errorf("step 0 left = %v, want solid Chika", got)
	}
	if got := first.Params.Colors[1]; len(got) != 9 {
		t.Errorf("step 0 center cycle length = %d, want 9 (Aqours Rainbow)", len(got))
	}
	want := pattern.Cycle{pattern.Dia, pattern.Kanan, pattern.Mari}
	got := first.Params.Colors[2]
	if len(got) != len(want) {
		t.Fatalf("step 0 right cycle length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step 0 right[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	second := s.Script.Steps[1]
	if second.BPM != 0 {
		t.Errorf("step 1 bpm = %v, want 0 (inherited at playback)", second.BPM)
	}
	if second.Params.Colors[0] != nil {
		t.Error("step 1 colors should stay nil for inheritance")
	}
	if !second.Params.Hold {
		t.Error("step 1 hold flag not set")
	}

	third := s.Script.Steps[2]
	if third.Params.Rainbow == nil {
		t.Fatal("step 2 rainbow override not set")
	}
	if !third.Params.Reverse {
		t.Error("step 2 reverse flag not set")
	}
	if third.Params.Rainbow[0] != pattern.Mari {
		t.Errorf("step 2 reversed rainbow starts with %v, want Mari", third.Params.Rainbow[0])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"empty patterns", "title: x\npatterns: []\n"},
		{"no bpm on first", "patterns:\n  - type: slow\n"},
		{"unknown tag", "patterns:\n  - type: moonwalk\n    bpm: 120\n"},
		{"unknown color", "patterns:\n  - type: slow\n    bpm: 120\n    left: octarine\n"},
		{"unknown color in list", "patterns:\n  - type: slow\n    bpm: 120\n    left: [chika, octarine]\n"},
		{"color wrong kind", "patterns:\n  - type: slow\n    bpm: 120\n    left: {a: b}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.script)); err == nil {
				t.Error("Parse() error = nil, want error")
			}
		})
	}
}

func TestParseInvalidSongSentinel(t *testing.T) {
	_, err := Parse([]byte("patterns:\n  - type: moonwalk\n    bpm: 120\n"))
	if !errors.Is(err, ErrInvalidSong) {
		t.Errorf("Parse() error = %v, want ErrInvalidSong", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.yml")
	if err := os.WriteFile(path, []byte(sampleScript), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Title != "Mirai Ticket" {
		t.Errorf("Title = %q", s.Title)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("Load(missing) error = nil")
	}
}
