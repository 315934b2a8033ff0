package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lumibag/lumibag/internal/logging"
	"github.com/lumibag/lumibag/internal/player"
)

// MethodPrefix namespaces every exposed method: a request for "play"
// arrives as "lumibag.play".
const MethodPrefix = "lumibag."

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeServerError    = -32000
)

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      json.RawMessage `json:"id"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
	ID      json.RawMessage `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Handler dispatches JSON-RPC 2.0 requests against the playback manager.
// The same handler serves both the HTTP endpoint and the datagram
// transport; a request is one JSON object, a response is one JSON object.
type Handler struct {
	player *player.Manager
	log    *zap.Logger
}

// NewHandler creates a handler backed by the given manager.
func NewHandler(p *player.Manager) *Handler {
	return &Handler{player: p, log: logging.GetLogger()}
}

// Dispatch executes one encoded request and returns the encoded response.
// Errors are encoded into the response; the returned slice is never nil.
func (h *Handler) Dispatch(data []byte) []byte {
	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		return encode(errorResponse(nil, codeParseError, "parse error"))
	}
	if req.JSONRPC != "2.0" || req.Method == "" {
		return encode(errorResponse(req.ID, codeInvalidRequest, "invalid request"))
	}

	h.log.Debug("rpc request", zap.String("method", req.Method))

	name, ok := strings.CutPrefix(req.Method, MethodPrefix)
	if !ok {
		return encode(errorResponse(req.ID, codeMethodNotFound, "method not found"))
	}

	result, err := h.call(name, req.Params)
	if err != nil {
		code := codeServerError
		var ipe invalidParamsError
		switch {
		case errors.Is(err, errMethodNotFound):
			code = codeMethodNotFound
		case errors.As(err, &ipe):
			code = codeInvalidParams
		}
		h.log.Warn("rpc request failed", zap.String("method", req.Method), zap.Error(err))
		return encode(errorResponse(req.ID, code, err.Error()))
	}
	return encode(response{JSONRPC: "2.0", Result: result, ID: req.ID})
}

var errMethodNotFound = errors.New("method not found")

// invalidParamsError marks parameter decode failures so they map to the
// right JSON-RPC error code.
type invalidParamsError struct{ err error }

func (e invalidParamsError) Error() string { return e.err.Error() }
func (e invalidParamsError) Unwrap() error { return e.err }

func (h *Handler) call(name string, params json.RawMessage) (any, error) {
	switch name {
	case "get_playlist":
		return h.player.Playlist(), nil
	case "get_status":
		return h.player.Status(), nil
	case "get_volume":
		return h.player.Volume(), nil
	case "set_volume":
		var v int
		if err := decodeParams(params, &v); err != nil {
			return nil, err
		}
		if err := h.player.SetVolume(v); err != nil {
			return nil, err
		}
		return h.player.Volume(), nil
	case "get_colors":
		return h.player.Colors(), nil
	case "set_color":
		var names []string
		if params != nil {
			if err := json.Unmarshal(params, &names); err != nil {
				return nil, invalidParamsError{fmt.Errorf("set_color: %w", err)}
			}
		}
		if err := h.player.SetColor(names...); err != nil {
			return nil, err
		}
		return true, nil
	case "play":
		var title string
		if err := decodeParams(params, &title); err != nil {
			return nil, err
		}
		if err := h.player.Play(title); err != nil {
			return nil, err
		}
		return true, nil
	case "play_index":
		var idx int
		if err := decodeParams(params, &idx); err != nil {
			return nil, err
		}
		if err := h.player.PlayIndex(idx); err != nil {
			return nil, err
		}
		return true, nil
	case "stop":
		h.player.Stop()
		return true, nil
	case "test_pattern":
		if err := h.player.TestPattern(); err != nil {
			return nil, err
		}
		return true, nil
	case "power_off":
		if err := h.player.PowerOff(); err != nil {
			return nil, err
		}
		return true, nil
	default:
		return nil, errMethodNotFound
	}
}

// decodeParams unpacks a single positional parameter.
func decodeParams[T any](params json.RawMessage, out *T) error {
	if params == nil {
		return invalidParamsError{fmt.Errorf("missing params")}
	}
	var pos []json.RawMessage
	if err := json.Unmarshal(params, &pos); err != nil {
		return invalidParamsError{fmt.Errorf("params must be an array: %w", err)}
	}
	if len(pos) != 1 {
		return invalidParamsError{fmt.Errorf("want 1 parameter, got %d", len(pos))}
	}
	if err := json.Unmarshal(pos[0], out); err != nil {
		return invalidParamsError{fmt.Errorf("bad parameter: %w", err)}
	}
	return nil
}

func errorResponse(id json.RawMessage, code int, msg string) response {
	return response{JSONRPC: "2.0", Error: &rpcError{Code: code, Message: msg}, ID: id}
}

func encode(resp response) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		// Marshalling a response of plain strings and numbers cannot fail;
		// keep the contract of always returning a response anyway.
		return []byte(`{"jsonrpc":"2.0","error":{"code":-32603,"message":"internal error"},"id":null}`)
	}
	return data
}
