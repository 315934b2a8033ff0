package rpc

import (
	"context"

	"go.uber.org/zap"

	"github.com/lumibag/lumibag/internal/sdp"
)

// Serve runs the datagram RPC loop: each reassembled inbound message is
// dispatched as one request and the response is sent back through the
// transport. Returns when the context is cancelled. Reply failures (an
// unplugged link, an exhausted key space) are logged and the loop keeps
// serving.
func Serve(ctx context.Context, t *sdp.Transport, h *Handler) error {
	for {
		peer, msg, err := t.Receive(ctx)
		if err != nil {
			return err
		}
		resp := h.Dispatch(msg)
		if err := t.SendReply(peer, resp); err != nil {
			h.log.Warn("rpc reply not sent", zap.Error(err))
		}
	}
}
