package sdp

import (
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize is the fixed width of the datagram header:
	// 1-byte key, 4-byte offset, 4-byte message length.
	HeaderSize = 9

	// DefaultTransportLimit is the default maximum datagram size in bytes.
	// Matches the usable ATT payload negotiated with the iOS companion app.
	DefaultTransportLimit = 48

	// MaxKey is the largest message key representable in the header's
	// single-byte key field.
	MaxKey = 255
)

// Header is the fixed wire header carried by every datagram. All fragments
// of one message share the same Key and MessageLength and differ only in
// Offset.
type Header struct {
	Key           uint8
	Offset        uint32
	MessageLength uint32
}

// Datagram is one header+payload unit transmitted over the constrained link.
type Datagram struct {
	Header  Header
	Payload []byte
}

// Encode serializes the datagram to wire format: big-endian header fields
// followed by the payload.
func (d Datagram) Encode() []byte {
	buf := make([]byte, HeaderSize+len(d.Payload))
	buf[0] = d.Header.Key
	binary.BigEndian.PutUint32(buf[1:5], d.Header.Offset)
	binary.BigEndian.PutUint32(buf[5:9], d.Header.MessageLength)
	copy(buf[HeaderSize:], d.Payload)
	return buf
}

// Len returns the encoded size of the datagram in bytes.
func (d Datagram) Len() int {
	return HeaderSize + len(d.Payload)
}

// String returns a debug representation of the datagram.
func (d Datagram) String() string {
	return fmt.Sprintf("Datagram{key=%d, offset=%d, message_length=%d, payload=%d}",
		d.Header.Key, d.Header.Offset, d.Header.MessageLength, len(d.Payload))
}

// DecodeDatagram parses a raw packet into a datagram. Packets shorter than
// the fixed header fail with ErrMalformedDatagram; all bytes past the header
// are treated as payload.
func DecodeDatagram(data []byte) (Datagram, error) {
	if len(data) < HeaderSize {
		return Datagram{}, fmt.Errorf("%w: %d bytes, need at least %d",
			ErrMalformedDatagram, len(data), HeaderSize)
	}
	return Datagram{
		Header: Header{
			Key:           data[0],
			Offset:        binary.BigEndian.Uint32(data[1:5]),
			MessageLength: binary.BigEndian.Uint32(data[5:9]),
		},
		Payload: data[HeaderSize:],
	}, nil
}
