// Package config loads the controller daemon's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumibag/lumibag/internal/sdp"
)

// DefaultPath is where the controller image installs the daemon config.
const DefaultPath = "/etc/lumibag/config.yml"

// Config is the daemon configuration.
type Config struct {
	// RPCHost is the listen address for the HTTP front. Empty binds all
	// interfaces.
	RPCHost string `yaml:"rpc_host"`

	// RPCPort is the listen port for the HTTP front.
	RPCPort int `yaml:"rpc_port"`

	// Playlist is the ordered list of song script paths.
	Playlist []string `yaml:"playlist"`

	// MusicDir holds the audio files the scripts reference.
	MusicDir string `yaml:"music_dir"`

	// Volume is the initial output level, 0-100.
	Volume int `yaml:"volume"`

	// TransportLimit is the maximum datagram size on the constrained link.
	TransportLimit int `yaml:"transport_limit"`

	// MaxPendingMessages bounds in-flight inbound reassembly; 0 keeps
	// incomplete messages indefinitely.
	MaxPendingMessages int `yaml:"max_pending_messages"`

	// AllowPowerOff gates the power_off RPC method.
	AllowPowerOff bool `yaml:"allow_power_off"`
}

// Default returns the configuration the daemon runs with when no file is
// present.
func Default() Config {
	return Config{
		RPCPort:        8480,
		Volume:         50,
		TransportLimit: sdp.DefaultTransportLimit,
	}
}

// Load reads the config file at path, filling unset fields with defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.RPCPort <= 0 || c.RPCPort > 65535 {
		return fmt.Errorf("rpc_port %d out of range", c.RPCPort)
	}
	if c.TransportLimit <= sdp.HeaderSize {
		return fmt.Errorf("transport_limit %d must exceed the %d-byte header", c.TransportLimit, sdp.HeaderSize)
	}
	if c.Volume < 0 || c.Volume > 100 {
		return fmt.Errorf("volume %d out of range 0-100", c.Volume)
	}
	if c.MaxPendingMessages < 0 {
		return fmt.Errorf("max_pending_messages must not be negative")
	}
	return nil
}
