package sdp

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/lumibag/lumibag/internal/logging"
	"github.com/lumibag/lumibag/internal/metrics"
)

// Sink accepts one encoded outbound datagram for transmission over the
// underlying link. It is invoked synchronously, once per datagram, in
// fragment order.
type Sink func(datagram []byte) error

// Options configures a Transport.
type Options struct {
	// TransportLimit is the maximum datagram size in bytes. Defaults to
	// DefaultTransportLimit. Must exceed HeaderSize.
	TransportLimit int

	// MaxPending bounds the number of in-flight inbound assemblers.
	// 0 retains incomplete assemblers indefinitely (the behavior of a
	// trusted single-peer link); when set, the oldest incomplete
	// assembler is evicted once the bound is reached.
	MaxPending int

	// QueueSize is the capacity of the inbound message queue. Defaults
	// to 64. Process blocks handing off a completed message once the
	// queue is full; the transport stays usable from other goroutines
	// while it waits.
	QueueSize int
}

// inbound is one fully reassembled message together with its opaque peer
// context. The link carries a single logical peer, so the context is
// always nil today; it is plumbed through so the RPC layer can route
// replies without caring.
type inbound struct {
	peer any
	data []byte
}

// Transport is the message-oriented facade over the datagram wire format.
// Process feeds raw inbound packets into reassembly, Receive yields
// completed messages in arrival order, and SendReply fragments an outbound
// message through the registered sink.
type Transport struct {
	limit int

	mu        sync.Mutex
	reg       *registry
	nextKey   int // count of keys issued; keys beyond MaxKey fail
	sink      Sink
	completed [][]byte // staged by the registry callback, drained by Process

	queue chan inbound
}

// NewTransport creates a transport with the given options.
func NewTransport(opts Options) (*Transport, error) {
	limit := opts.TransportLimit
	if limit == 0 {
		limit = DefaultTransportLimit
	}
	if limit <= HeaderSize {
		return nil, fmt.Errorf("%w: limit %d, header %d", ErrTransportLimit, limit, HeaderSize)
	}
	queueSize := opts.QueueSize
	if queueSize == 0 {
		queueSize = 64
	}
	t := &Transport{
		limit: limit,
		queue: make(chan inbound, queueSize),
	}
	t.reg = newRegistry(opts.MaxPending,
		func(key uint8, data []byte) {
			logging.LogMessageAssembled(key, len(data))
			metrics.MessagesAssembled.Inc()
			// Runs under t.mu; the queue send happens in Process after
			// the lock is released, so a full queue never stalls
			// SendReply or Pending.
			t.completed = append(t.completed, data)
		},
		func(key uint8) {
			logging.Warn("Evicting incomplete message assembler",
				zap.Uint8("key", key))
			metrics.AssemblersEvicted.Inc()
		},
	)
	return t, nil
}

// TransportLimit returns the configured maximum datagram size.
func (t *Transport) TransportLimit() int {
	return t.limit
}

// SetSink registers the outbound sink used by SendReply. Passing nil
// unregisters it.
func (t *Transport) SetSink(sink Sink) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sink = sink
}

// Process decodes one raw inbound packet and routes it into reassembly.
// Malformed or out-of-range datagrams are dropped: the error is returned
// for reporting but the transport remains usable.
func (t *Transport) Process(raw []byte) error {
	d, err := DecodeDatagram(raw)
	if err != nil {
		logging.LogDatagramDrop("malformed", raw)
		metrics.DatagramsDropped.Inc()
		return err
	}
	logging.LogDatagram("inbound", d.Header.Key, d.Header.Offset, d.Header.MessageLength, len(d.Payload))

	t.mu.Lock()
	err = t.reg.route(d)
	pending := t.reg.pending()
	completed := t.completed
	t.completed = nil
	t.mu.Unlock()

	for _, data := range completed {
		t.queue <- inbound{peer: nil, data: data}
	}

	if err != nil {
		logging.LogDatagramDrop("offset out of range", raw)
		metrics.DatagramsDropped.Inc()
		return err
	}
	metrics.DatagramsProcessed.Inc()
	metrics.PendingAssemblers.Set(float64(pending))
	return nil
}

// Receive blocks until a fully reassembled inbound message is available,
// then dequeues it FIFO. The returned peer context is opaque and must be
// passed back to SendReply.
func (t *Transport) Receive(ctx context.Context) (any, []byte, error) {
	select {
	case in := <-t.queue:
		return in.peer, in.data, nil
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}
}

// SendReply fragments the reply at the transport limit and emits each
// datagram through the registered sink, synchronously and in order. Keys
// are allocated from a monotonically increasing counter; once the counter
// passes the range of the header's key field the reply fails with
// ErrKeySpaceExhausted rather than truncating. A missing sink drops the
// reply and reports ErrNoSink.
func (t *Transport) SendReply(peer any, reply []byte) error {
	_ = peer // single logical peer

	t.mu.Lock()
	sink := t.sink
	key := t.nextKey
	if key > MaxKey {
		t.mu.Unlock()
		return fmt.Errorf("%w: %d keys issued", ErrKeySpaceExhausted, t.nextKey)
	}
	t.nextKey++
	t.mu.Unlock()

	if sink == nil {
		logging.Warn("Reply dropped: no outbound sink registered")
		return ErrNoSink
	}

	msg := Message{Key: uint8(key), Data: reply}
	frags, err := msg.Datagrams(t.limit)
	if err != nil {
		return err
	}
	for d := range frags {
		logging.LogDatagram("outbound", d.Header.Key, d.Header.Offset, d.Header.MessageLength, len(d.Payload))
		if err := sink(d.Encode()); err != nil {
			return fmt.Errorf("outbound sink: %w", err)
		}
		metrics.DatagramsSent.Inc()
	}
	return nil
}

// Pending returns the number of in-flight inbound assemblers. Useful for
// diagnostics; an assembler that never completes holds its buffer until
// eviction (if configured) or forever.
func (t *Transport) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reg.pending()
}
