package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lumibag/lumibag/internal/config"
	"github.com/lumibag/lumibag/internal/pattern"
	"github.com/lumibag/lumibag/internal/player"
)

type nopSurface struct{}

func (nopSurface) Apply(*pattern.Frame) error { return nil }

func testConfig(t *testing.T) config.Config {
	t.Helper()
	script := "title: T\npatterns:\n  - type: flash\n    bpm: 45000\n    left: ruby\n"
	path := filepath.Join(t.TempDir(), "t.yml")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.RPCHost = "127.0.0.1"
	cfg.RPCPort = 0
	cfg.Playlist = []string{path}
	return cfg
}

func startServer(t *testing.T) (*Server, context.CancelFunc, chan error) {
	t.Helper()
	srv, err := New(testConfig(t), nopSurface{}, player.NopAudio{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := srv.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()
	return srv, cancel, done
}

func TestServerEndpoints(t *testing.T) {
	srv, cancel, done := startServer(t)
	defer func() {
		cancel()
		select {
		case <-done:
		case <-time.After(10 * time.Second):
			t.Error("server did not shut down")
		}
	}()
	base := "http://" + srv.Addr()

	resp, err := http.Get(base + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}

	resp, err = http.Post(base+"/rpc", "application/json",
		strings.NewReader(`{"jsonrpc":"2.0","method":"lumibag.get_status","id":1}`))
	if err != nil {
		t.Fatalf("POST /rpc: %v", err)
	}
	defer resp.Body.Close()
	var out struct {
		Result any `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Result != "IDLE" {
		t.Errorf("get_status = %v, want IDLE", out.Result)
	}

	resp, err = http.Get(base + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("metrics status = %d", resp.StatusCode)
	}
}

func TestServerShutdown(t *testing.T) {
	_, cancel, done := startServer(t)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Serve() did not return after cancellation")
	}
}
