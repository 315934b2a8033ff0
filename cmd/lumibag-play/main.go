// Lumibag-play plays one song script against the terminal LED simulator.
//
// It exists for writing choreography: edit the YAML, run the script, watch
// the 3x9 grid in the terminal at full tempo without hardware attached.
//
// Usage:
//
//	lumibag-play <song.yml>
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lumibag/lumibag/internal/logging"
	"github.com/lumibag/lumibag/internal/show"
	"github.com/lumibag/lumibag/internal/song"
	"github.com/lumibag/lumibag/internal/ui"
	"github.com/lumibag/lumibag/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	headless bool
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "lumibag-play <song.yml>",
	Short: "Play a song script in the terminal",
	Long: `Play one YAML song script against the terminal LED simulator.

The simulator renders the 3x9 blade grid with true-color blocks and runs
the show clock at full tempo, so the choreography previews exactly as it
will play on the bag. Press q to stop early.`,
	Example: `  # Preview a script in the simulator
  lumibag-play songs/aozora-jumping-heart.yml

  # Headless run, logging one line per frame
  lumibag-play --headless --log-level debug songs/aozora-jumping-heart.yml`,
	Args:    cobra.ExactArgs(1),
	Version: version.Version,
	RunE:    runPlay,
}

func init() {
	rootCmd.Flags().BoolVar(&headless, "headless", false, "Log frames instead of rendering the simulator")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return err
	}
	defer logging.Sync()

	s, err := song.Load(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if headless {
		return show.NewEngine(ui.LogSurface{}).Play(ctx, s.Script)
	}

	sim := ui.NewSimulator(s.Title)
	playCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		err := show.NewEngine(sim).Play(playCtx, s.Script)
		sim.Quit()
		done <- err
	}()

	if err := sim.Run(); err != nil {
		return err
	}
	cancel()
	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
