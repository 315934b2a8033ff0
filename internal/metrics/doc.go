// Package metrics defines the Prometheus instrumentation for the Lumibag
// daemon: wire-layer counters (datagrams processed, dropped, sent, messages
// assembled, assembler evictions), show-clock counters (ticks, overruns,
// accumulated drift) and the player state gauge.
//
// Metrics register on the default registry via promauto and are served by
// the daemon's /metrics endpoint.
package metrics
