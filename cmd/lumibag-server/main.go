// Lumibag-server is the controller daemon for the bag.
//
// It loads the playlist, owns the LED surface and exposes the JSON-RPC
// control interface over HTTP and over the datagram link at /sdp. The
// daemon advertises itself via mDNS so the companion app can find it
// without configuration.
//
// Usage:
//
//	lumibag-server serve [flags]
//
// See 'lumibag-server serve --help' for available options.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lumibag/lumibag/internal/config"
	"github.com/lumibag/lumibag/internal/logging"
	"github.com/lumibag/lumibag/internal/player"
	"github.com/lumibag/lumibag/internal/server"
	"github.com/lumibag/lumibag/internal/ui"
	"github.com/lumibag/lumibag/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lumibag-server",
	Short: "Lumibag Controller Daemon",
	Long: `The controller daemon for the LED bag.

It plays beat-synchronized LED choreography from YAML song scripts and
accepts remote control over JSON-RPC: over plain HTTP for development,
and over the fragmenting datagram protocol at /sdp for links with a
small MTU.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var (
	configPath string
	logLevel   string
	silent     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the controller daemon",
	Long: `Start the controller daemon with the given configuration.

The daemon serves JSON-RPC at POST /rpc, the datagram link at /sdp,
Prometheus metrics at /metrics and a liveness probe at /healthz, all on
the configured listen address.`,
	Example: `  # Start with the installed configuration
  lumibag-server serve

  # Start with a local config and verbose logging
  lumibag-server serve --config ./config.yml --log-level debug

  # Start without audio output
  lumibag-server serve --silent`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "Path to the daemon configuration file")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&silent, "silent", false, "Disable audio output")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return err
	}
	defer logging.Sync()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	var audio player.Audio = player.ExecAudio{}
	if silent {
		audio = player.NopAudio{}
	}

	srv, err := server.New(cfg, ui.LogSurface{}, audio)
	if err != nil {
		return err
	}
	if err := srv.Listen(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Serve(ctx)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lumibag-server %s (commit: %s)\n", version.Version, version.Commit)
	},
}
