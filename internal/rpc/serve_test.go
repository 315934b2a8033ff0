package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/lumibag/lumibag/internal/sdp"
)

func TestServeOverDatagrams(t *testing.T) {
	h := newTestHandler(t)
	transport, err := sdp.NewTransport(sdp.Options{TransportLimit: 20})
	if err != nil {
		t.Fatal(err)
	}

	// The sink reassembles the outbound reply by appending payloads: the
	// transport emits fragments synchronously in offset order.
	replies := make(chan []byte, 1)
	var buf []byte
	transport.SetSink(func(raw []byte) error {
		d, err := sdp.DecodeDatagram(raw)
		if err != nil {
			return err
		}
		buf = append(buf, d.Payload...)
		if len(buf) == int(d.Header.MessageLength) {
			replies <- buf
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() {
		served <- Serve(ctx, transport, h)
	}()

	// Feed one request, fragmented at a limit small enough to force
	// several datagrams.
	req := sdp.Message{Key: 5, Data: []byte(call("get_status", "", 7))}
	frags, err := req.Datagrams(transport.TransportLimit())
	if err != nil {
		t.Fatal(err)
	}
	for d := range frags {
		if err := transport.Process(d.Encode()); err != nil {
			t.Fatalf("Process() error = %v", err)
		}
	}

	select {
	case raw := <-replies:
		var resp decoded
		if err := json.Unmarshal(raw, &resp); err != nil {
			t.Fatalf("reply is not JSON: %v (%s)", err, raw)
		}
		if resp.Result != "IDLE" {
			t.Errorf("result = %v, want IDLE", resp.Result)
		}
		if id, ok := resp.ID.(float64); !ok || id != 7 {
			t.Errorf("id = %v, want 7", resp.ID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no reply over the transport")
	}

	cancel()
	select {
	case err := <-served:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve() did not stop on cancellation")
	}
}
