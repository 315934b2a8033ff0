package sdp

import (
	"fmt"
	"iter"
)

// Message is one logical RPC message identified by a key. The send path
// fragments it into datagrams; the receive path reconstructs it whole.
type Message struct {
	Key  uint8
	Data []byte
}

// Datagrams returns the message split into an ordered sequence of datagrams
// sized to the given transport limit. The sequence is produced lazily and is
// restartable; each fragment's header carries the total message length so
// the receiver can size its buffer from whichever fragment arrives first.
//
// The limit must exceed HeaderSize or ErrTransportLimit is returned. A
// zero-length message yields exactly one empty datagram so the receiver
// still observes it.
func (m Message) Datagrams(limit int) (iter.Seq[Datagram], error) {
	if limit <= HeaderSize {
		return nil, fmt.Errorf("%w: limit %d, header %d", ErrTransportLimit, limit, HeaderSize)
	}
	payloadMax := limit - HeaderSize
	count := (len(m.Data) + payloadMax - 1) / payloadMax
	if count == 0 {
		count = 1
	}
	return func(yield func(Datagram) bool) {
		for i := 0; i < count; i++ {
			offset := i * payloadMax
			end := offset + payloadMax
			if end > len(m.Data) {
				end = len(m.Data)
			}
			d := Datagram{
				Header: Header{
					Key:           m.Key,
					Offset:        uint32(offset),
					MessageLength: uint32(len(m.Data)),
				},
				Payload: m.Data[offset:end],
			}
			if !yield(d) {
				return
			}
		}
	}, nil
}
