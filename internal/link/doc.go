// Package link carries the datagram wire protocol over a WebSocket
// connection during development. One binary WebSocket message is one
// datagram in each direction; the frame boundary of the socket plays the
// role the characteristic write plays on the constrained radio link, so
// everything above the transport behaves identically on both.
package link
