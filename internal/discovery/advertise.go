// Package discovery advertises the controller's RPC endpoint over mDNS so
// the companion app can find the bag on the local network without
// configuration. It stands in for BLE advertising during development: the
// service type carries the same role the advertisement payload does over
// the radio.
package discovery

import (
	"fmt"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/lumibag/lumibag/internal/logging"
	"github.com/lumibag/lumibag/internal/version"
)

const (
	// ServiceType is the mDNS service type the controller advertises.
	ServiceType = "_lumibag-rpc._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."
)

// Service is a running mDNS advertisement.
type Service struct {
	server *zeroconf.Server
}

// Advertise registers the RPC endpoint under the given instance name.
// Shut the returned service down before exiting so the record is
// withdrawn instead of timing out.
func Advertise(instance string, port int) (*Service, error) {
	txt := []string{
		"version=" + version.Version,
		"rpc=jsonrpc2",
	}
	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("discovery: register %s: %w", ServiceType, err)
	}
	logging.Info("mDNS advertisement up",
		zap.String("instance", instance),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)
	return &Service{server: server}, nil
}

// Shutdown withdraws the advertisement.
func (s *Service) Shutdown() {
	if s.server != nil {
		s.server.Shutdown()
	}
}
