package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lumibag/lumibag/internal/config"
	"github.com/lumibag/lumibag/internal/discovery"
	"github.com/lumibag/lumibag/internal/link"
	"github.com/lumibag/lumibag/internal/logging"
	"github.com/lumibag/lumibag/internal/player"
	"github.com/lumibag/lumibag/internal/rpc"
	"github.com/lumibag/lumibag/internal/sdp"
	"github.com/lumibag/lumibag/internal/show"
	"github.com/lumibag/lumibag/internal/version"
)

// shutdownTimeout bounds graceful HTTP shutdown on exit.
const shutdownTimeout = 5 * time.Second

// Server is the assembled controller daemon: playback manager, JSON-RPC
// dispatch, the datagram transport with its WebSocket link, metrics and
// mDNS advertisement, all behind one HTTP listener.
type Server struct {
	cfg       config.Config
	manager   *player.Manager
	handler   *rpc.Handler
	transport *sdp.Transport
	httpSrv   *http.Server
	log       *zap.Logger

	listener net.Listener
}

// New wires the daemon together. The surface and audio implementations
// are injected so the same assembly runs against hardware, the terminal
// simulator or a test double.
func New(cfg config.Config, surface show.Surface, audio player.Audio) (*Server, error) {
	transport, err := sdp.NewTransport(sdp.Options{
		TransportLimit: cfg.TransportLimit,
		MaxPending:     cfg.MaxPendingMessages,
	})
	if err != nil {
		return nil, err
	}

	manager, err := player.New(player.Options{
		Playlist:      cfg.Playlist,
		MusicDir:      cfg.MusicDir,
		Volume:        cfg.Volume,
		AllowPowerOff: cfg.AllowPowerOff,
		Audio:         audio,
		Surface:       surface,
	})
	if err != nil {
		return nil, err
	}

	handler := rpc.NewHandler(manager)
	router := rpc.NewRouter(handler)
	router.Handle("/sdp", link.NewWebSocket(transport))
	router.Handle("/metrics", promhttp.Handler())

	return &Server{
		cfg:       cfg,
		manager:   manager,
		handler:   handler,
		transport: transport,
		httpSrv:   &http.Server{Handler: router},
		log:       logging.GetLogger(),
	}, nil
}

// Listen binds the HTTP listener. Separate from Serve so callers can
// learn the bound address before serving (the config may ask for port 0).
func (s *Server) Listen() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.RPCHost, s.cfg.RPCPort)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound listen address. Valid after Listen.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve runs the daemon until the context is cancelled or the HTTP server
// fails. On exit, playback stops, the advertisement is withdrawn and the
// listener shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	s.log.Info("daemon up",
		zap.String("addr", s.Addr()),
		zap.String("version", version.Full()),
		zap.Int("songs", len(s.cfg.Playlist)),
		zap.Int("transport_limit", s.cfg.TransportLimit),
	)

	// mDNS is best-effort: a network without multicast still gets a
	// working daemon on the configured address.
	port := s.listener.Addr().(*net.TCPAddr).Port
	mdns, err := discovery.Advertise("lumibag", port)
	if err != nil {
		s.log.Warn("mDNS advertisement failed", zap.Error(err))
	} else {
		defer mdns.Shutdown()
	}

	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		if err := s.httpSrv.Serve(s.listener); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		if err := rpc.Serve(serveCtx, s.transport, s.handler); !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	var reason error
	select {
	case <-ctx.Done():
	case reason = <-errCh:
	}

	cancel()
	s.manager.Stop()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		s.log.Warn("http shutdown", zap.Error(err))
	}
	s.log.Info("daemon stopped")
	return reason
}
