package player

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lumibag/lumibag/internal/logging"
	"github.com/lumibag/lumibag/internal/metrics"
	"github.com/lumibag/lumibag/internal/pattern"
	"github.com/lumibag/lumibag/internal/show"
	"github.com/lumibag/lumibag/internal/song"
)

// Playback status values, reported verbatim by the get_status RPC method.
const (
	StatusIdle    = "IDLE"
	StatusPlaying = "PLAYING"
)

var (
	// ErrUnknownSong indicates a play request for a title or index not in
	// the playlist.
	ErrUnknownSong = errors.New("player: unknown song")

	// ErrPowerOffDisabled indicates a power_off request on a controller
	// whose config does not allow remote shutdown.
	ErrPowerOffDisabled = errors.New("player: power off disabled by configuration")

	// ErrBadColorCount indicates a set_color request with a number of
	// colors that maps to neither all columns, per-column, nor per-row.
	ErrBadColorCount = errors.New("player: set_color takes 1, 3 or 9 colors")
)

// Options configures a Manager.
type Options struct {
	// Playlist is the ordered list of song script paths.
	Playlist []string
	// MusicDir holds the audio files the scripts name.
	MusicDir string
	// Volume is the initial output level, clamped to 0-100.
	Volume int
	// AllowPowerOff gates the power_off RPC method.
	AllowPowerOff bool
	// Audio plays backing tracks; NopAudio when nil.
	Audio Audio
	// Surface receives LED frames.
	Surface show.Surface
}

// Manager owns the LED surface and the playback lifecycle. All LED writes
// go through the manager: starting a show, setting a static color or
// running the test animation first stops whatever else is driving the
// surface, so there is never more than one writer.
type Manager struct {
	surface       show.Surface
	audio         Audio
	musicDir      string
	allowPowerOff bool
	log           *zap.Logger

	// powerOffCmd is swapped out by tests.
	powerOffCmd func() error

	// opMu serializes the stop/start transitions. mu alone cannot:
	// stopLocked drops it while joining the playback goroutine, and a
	// caller slipping into that window could start a generation the
	// resumed stop would then overwrite without cancelling.
	opMu sync.Mutex

	mu         sync.Mutex
	songs      []*song.Song
	volume     int
	colorNames []string
	status     string
	cancel     context.CancelFunc
	done       chan struct{}
}

// New loads every song on the playlist and returns an idle manager. A
// script that fails to load fails startup: a broken playlist should be
// caught at boot, not when someone hits play.
func New(opts Options) (*Manager, error) {
	audio := opts.Audio
	if audio == nil {
		audio = NopAudio{}
	}
	m := &Manager{
		surface:       opts.Surface,
		audio:         audio,
		musicDir:      opts.MusicDir,
		allowPowerOff: opts.AllowPowerOff,
		log:           logging.GetLogger(),
		volume:        clampVolume(opts.Volume),
		colorNames:    []string{"None"},
		status:        StatusIdle,
	}
	m.powerOffCmd = func() error {
		return exec.Command("poweroff").Run()
	}
	for _, path := range opts.Playlist {
		s, err := song.Load(path)
		if err != nil {
			return nil, err
		}
		m.songs = append(m.songs, s)
	}
	if err := audio.SetVolume(m.volume); err != nil {
		m.log.Warn("initial volume not applied", zap.Error(err))
	}
	return m, nil
}

// Playlist returns the loaded song titles in playback order.
func (m *Manager) Playlist() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	titles := make([]string, len(m.songs))
	for i, s := range m.songs {
		titles[i] = s.Title
	}
	return titles
}

// Status reports IDLE or PLAYING.
func (m *Manager) Status() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Volume returns the current output level.
func (m *Manager) Volume() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// SetVolume clamps the level to 0-100 and applies it to the audio output.
func (m *Manager) SetVolume(v int) error {
	m.mu.Lock()
	m.volume = clampVolume(v)
	v = m.volume
	m.mu.Unlock()
	return m.audio.SetVolume(v)
}

// Colors returns the color names from the last set_color request.
func (m *Manager) Colors() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.colorNames))
	copy(out, m.colorNames)
	return out
}

// SetColor stops any running show and lights the blades statically. One
// name colors everything, three names color the columns left to right,
// nine names rotate down the rows of every column.
func (m *Manager) SetColor(names ...string) error {
	var frame pattern.Frame
	switch len(names) {
	case 1:
		cyc, ok := pattern.CycleByName(names[0])
		if !ok {
			return fmt.Errorf("player: unknown color %q", names[0])
		}
		for x := 0; x < pattern.Columns; x++ {
			for y := 0; y < pattern.Rows; y++ {
				frame.Set(x, y, cyc.At(y))
			}
		}
	case pattern.Columns:
		for x, name := range names {
			cyc, ok := pattern.CycleByName(name)
			if !ok {
				return fmt.Errorf("player: unknown color %q", name)
			}
			for y := 0; y < pattern.Rows; y++ {
				frame.Set(x, y, cyc.At(y))
			}
		}
	case pattern.Rows:
		for y, name := range names {
			col, ok := pattern.ColorByName(name)
			if !ok {
				return fmt.Errorf("player: unknown color %q", name)
			}
			for x := 0; x < pattern.Columns; x++ {
				frame.Set(x, y, col)
			}
		}
	default:
		return ErrBadColorCount
	}

	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
	m.colorNames = append([]string(nil), names...)
	return m.surface.Apply(&frame)
}

// Play starts playback at the song with the given title.
func (m *Manager) Play(title string) error {
	m.mu.Lock()
	idx := -1
	for i, s := range m.songs {
		if s.Title == title {
			idx = i
			break
		}
	}
	m.mu.Unlock()
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownSong, title)
	}
	return m.PlayIndex(idx)
}

// PlayIndex starts playback at the given playlist position and advances
// through the rest of the playlist. Any current show stops first.
func (m *Manager) PlayIndex(idx int) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.mu.Lock()
	defer m.mu.Unlock()
	if idx < 0 || idx >= len(m.songs) {
		return fmt.Errorf("%w: index %d", ErrUnknownSong, idx)
	}
	m.stopLocked()
	ctx := m.startLocked()
	go m.runPlaylist(ctx, m.done, idx)
	return nil
}

// TestPattern stops any running show and plays the rainbow wipe once.
func (m *Manager) TestPattern() error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
	ctx := m.startLocked()
	go m.runTestWipe(ctx, m.done)
	return nil
}

// Stop halts playback and clears the blades. It returns once the playback
// goroutine has exited; the wait is bounded by one tick of the show clock.
func (m *Manager) Stop() {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.mu.Lock()
	m.stopLocked()
	m.mu.Unlock()
}

// PowerOff shuts the controller down, when the config allows it. Playback
// is stopped and the blades cleared before the shutdown command runs.
func (m *Manager) PowerOff() error {
	if !m.allowPowerOff {
		return ErrPowerOffDisabled
	}
	m.Stop()
	m.log.Info("powering off")
	return m.powerOffCmd()
}

// startLocked begins a new playback generation. Caller holds the mutex and
// has already stopped the previous generation.
func (m *Manager) startLocked() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})
	m.status = StatusPlaying
	metrics.PlayerPlaying.Set(1)
	return ctx
}

// stopLocked cancels the current generation and waits for its goroutine.
// Callers hold opMu and mu; mu is released while waiting so the goroutine
// can run its own cleanup, and opMu keeps other stop/start callers out of
// that window. The generation fields are cleared first, so a finishing
// goroutine from this generation no longer matches and leaves the new
// state alone.
func (m *Manager) stopLocked() {
	if m.cancel == nil {
		return
	}
	cancel, done := m.cancel, m.done
	m.cancel, m.done = nil, nil
	m.mu.Unlock()
	cancel()
	<-done
	m.mu.Lock()
	m.status = StatusIdle
	metrics.PlayerPlaying.Set(0)
	m.clearSurface()
}

// finish marks the end of a playback generation, unless a Stop already
// retired it.
func (m *Manager) finish(done chan struct{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done != done {
		return
	}
	m.cancel, m.done = nil, nil
	m.status = StatusIdle
	metrics.PlayerPlaying.Set(0)
	m.clearSurface()
}

func (m *Manager) runPlaylist(ctx context.Context, done chan struct{}, start int) {
	defer close(done)
	defer m.finish(done)

	engine := show.NewEngine(m.surface)
	for idx := start; idx < len(m.songs); idx++ {
		s := m.songs[idx]
		m.log.Info("playing song", zap.Int("index", idx), zap.String("title", s.Title))

		songCtx, cancelSong := context.WithCancel(ctx)
		if s.Filename != "" {
			path := filepath.Join(m.musicDir, s.Filename)
			go func() {
				if err := m.audio.Play(songCtx, path); err != nil && songCtx.Err() == nil {
					m.log.Warn("audio playback failed", zap.String("path", path), zap.Error(err))
				}
			}()
		}
		err := engine.Play(songCtx, s.Script)
		cancelSong()
		m.clearSurface()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			m.log.Error("show aborted", zap.String("title", s.Title), zap.Error(err))
			return
		}
	}
}

// runTestWipe sweeps the color wheel across the blades once.
func (m *Manager) runTestWipe(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer m.finish(done)

	var frame pattern.Frame
	for step := 0; step < 256; step++ {
		for i := 0; i < pattern.NumPixels; i++ {
			frame[i] = pattern.Wheel(uint8((i*256/pattern.NumPixels + step) % 256))
		}
		if err := m.surface.Apply(&frame); err != nil {
			m.log.Error("test wipe aborted", zap.Error(err))
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func (m *Manager) clearSurface() {
	var blank pattern.Frame
	if err := m.surface.Apply(&blank); err != nil {
		m.log.Warn("clearing blades failed", zap.Error(err))
	}
}

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
