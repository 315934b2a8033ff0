// Package server assembles the controller daemon.
//
// One HTTP listener carries every front: POST /rpc for JSON-RPC over
// HTTP, /sdp for the WebSocket datagram link, /metrics for Prometheus
// and /healthz for liveness. The playback manager behind them owns the
// LED surface; the mDNS advertisement makes the whole thing discoverable
// on the local network.
package server
