package player

import (
	"context"
	"fmt"
	"os/exec"

	"go.uber.org/zap"

	"github.com/lumibag/lumibag/internal/logging"
)

// Audio plays a song's backing track and controls the output volume. The
// LED show runs regardless of audio: playback failures are logged, never
// fatal.
type Audio interface {
	// Play blocks until the track ends or the context is cancelled.
	Play(ctx context.Context, path string) error
	// SetVolume sets the output level, 0-100.
	SetVolume(percent int) error
}

// NopAudio is the silent implementation used by the simulator and tests.
type NopAudio struct{}

func (NopAudio) Play(ctx context.Context, path string) error { return nil }
func (NopAudio) SetVolume(percent int) error                 { return nil }

// ExecAudio shells out to the system player and mixer, the way the
// controller image is set up (aplay + amixer on the headphone control).
type ExecAudio struct {
	// PlayerCommand is the audio player binary. Defaults to aplay.
	PlayerCommand string
	// MixerControl is the amixer simple control name. Defaults to PCM.
	MixerControl string
}

func (a ExecAudio) player() string {
	if a.PlayerCommand != "" {
		return a.PlayerCommand
	}
	return "aplay"
}

func (a ExecAudio) control() string {
	if a.MixerControl != "" {
		return a.MixerControl
	}
	return "PCM"
}

func (a ExecAudio) Play(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, a.player(), path)
	logging.Debug("starting audio", zap.String("command", a.player()), zap.String("path", path))
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("player: audio %s: %w", path, err)
	}
	return nil
}

func (a ExecAudio) SetVolume(percent int) error {
	cmd := exec.Command("amixer", "sset", a.control(), fmt.Sprintf("%d%%", percent))
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("player: amixer: %w (%s)", err, out)
	}
	return nil
}
