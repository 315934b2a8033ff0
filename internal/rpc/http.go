package rpc

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxRequestBytes bounds an HTTP RPC request body. Requests are single
// JSON objects naming a method and a handful of parameters.
const maxRequestBytes = 64 * 1024

// NewRouter mounts the handler on a chi router at POST /rpc alongside a
// liveness probe at /healthz. Callers mount additional routes (metrics,
// the datagram link) on the same router.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/rpc", h.ServeHTTP)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// ServeHTTP handles one JSON-RPC request per POST body.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		http.Error(w, "read error", http.StatusBadRequest)
		return
	}
	resp := h.Dispatch(body)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(resp)
}
