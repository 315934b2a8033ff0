package sdp

import "errors"

var (
	// ErrMalformedDatagram indicates a raw packet shorter than the fixed
	// datagram header. There is no checksum; truncation is the only
	// corruption the codec can detect.
	ErrMalformedDatagram = errors.New("sdp: malformed datagram")

	// ErrTransportLimit indicates a transport limit too small to carry a
	// datagram header plus at least one payload byte.
	ErrTransportLimit = errors.New("sdp: transport limit must exceed header size")

	// ErrOffsetRange indicates a fragment whose payload would extend past
	// the message length declared in its header.
	ErrOffsetRange = errors.New("sdp: fragment offset out of range")

	// ErrKeySpaceExhausted indicates the outbound message key counter has
	// passed the range representable in the single-byte header key field.
	// Replies fail loudly instead of silently truncating the key.
	ErrKeySpaceExhausted = errors.New("sdp: message key space exhausted")

	// ErrNoSink indicates a reply was dropped because no outbound sink is
	// registered on the transport.
	ErrNoSink = errors.New("sdp: no outbound sink registered")

	// ErrTransportClosed indicates the transport has been closed.
	ErrTransportClosed = errors.New("sdp: transport closed")
)
