// Package sdp implements the Simple Datagram Protocol: fragmentation and
// reassembly of arbitrarily large RPC messages over a link with a very
// small maximum packet size (a BLE GATT characteristic in production).
//
// # Wire Format
//
// Every datagram carries a fixed 9-byte header followed by payload, all
// integers big-endian:
//
//	[0]     key             Message identifier, 0-255
//	[1-4]   offset          Byte offset of this fragment within the message
//	[5-8]   message_length  Total length of the message being assembled
//	[9+]    payload         Up to transport_limit - 9 bytes
//
// Every fragment of one message carries the same message_length and a
// distinct offset, so the receiver can size its reassembly buffer from
// whichever fragment arrives first. There is no checksum; only truncation
// is detected.
//
// # Fragmentation
//
// Message.Datagrams splits a message at a given transport limit:
//
//	msg := sdp.Message{Key: 0, Data: reply}
//	frags, err := msg.Datagrams(48)
//	if err != nil {
//	    return err
//	}
//	for d := range frags {
//	    send(d.Encode())
//	}
//
// # Reassembly
//
// Fragments for independent keys assemble concurrently; within one key any
// arrival permutation reconstructs the same message, and duplicate writes
// are idempotent. An assembler that never completes is retained
// indefinitely by default; Options.MaxPending bounds this for lossy links
// by evicting the oldest incomplete assembler.
//
// # Transport
//
// Transport is the boundary handed to the RPC layer:
//
//	t, _ := sdp.NewTransport(sdp.Options{})
//	t.SetSink(func(datagram []byte) error { return conn.Write(datagram) })
//
//	// wire context: one call per raw packet received from the link
//	_ = t.Process(raw)
//
//	// dispatch context
//	peer, msg, err := t.Receive(ctx)
//	...
//	err = t.SendReply(peer, response)
//
// Process reports malformed packets as errors but never becomes unusable;
// SendReply fails with ErrKeySpaceExhausted once 256 keys have been issued
// (the single-byte key field bounds the number of distinct messages ever
// sent) and with ErrNoSink when no sink is registered.
//
// # Thread Safety
//
// All Transport methods are safe for concurrent use. The assembler map is
// only ever written from Process, but the same mutex also serializes key
// allocation for SendReply.
package sdp
