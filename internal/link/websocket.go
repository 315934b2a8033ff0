package link

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lumibag/lumibag/internal/logging"
	"github.com/lumibag/lumibag/internal/sdp"
)

// WebSocket carries datagrams over a WebSocket connection: one binary
// message is one datagram, in both directions. It is the development
// stand-in for the BLE characteristic the controller uses in the field,
// with the same single-peer shape — a new connection displaces the
// previous one.
type WebSocket struct {
	transport *sdp.Transport
	upgrader  websocket.Upgrader
	log       *zap.Logger

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewWebSocket wires a transport to a WebSocket endpoint. The transport's
// outbound sink is registered here; reply datagrams go to whichever
// connection is current.
func NewWebSocket(t *sdp.Transport) *WebSocket {
	l := &WebSocket{
		transport: t,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // single-operator device on a local link
			},
		},
		log: logging.GetLogger(),
	}
	t.SetSink(l.write)
	return l
}

// ServeHTTP upgrades the request and pumps inbound datagrams into the
// transport until the peer disconnects.
func (l *WebSocket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := l.upgrader.Upgrade(w, r, nil)
	if err != nil {
		l.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	logging.LogConnection(r.RemoteAddr, "connected")
	l.attach(conn)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		if msgType != websocket.BinaryMessage {
			logging.LogDatagramDrop("non-binary websocket message", data)
			continue
		}
		if len(data) > l.transport.TransportLimit() {
			logging.LogDatagramDrop("datagram exceeds transport limit", data)
			continue
		}
		// Malformed datagrams are dropped and logged by the transport.
		_ = l.transport.Process(data)
	}

	logging.LogConnection(r.RemoteAddr, "disconnected")
	l.detach(conn)
	conn.Close()
}

// write is the transport's outbound sink: one datagram per binary message.
func (l *WebSocket) write(datagram []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn == nil {
		return sdp.ErrTransportClosed
	}
	return l.conn.WriteMessage(websocket.BinaryMessage, datagram)
}

func (l *WebSocket) attach(conn *websocket.Conn) {
	l.mu.Lock()
	prev := l.conn
	l.conn = conn
	l.mu.Unlock()
	if prev != nil {
		prev.Close()
	}
}

func (l *WebSocket) detach(conn *websocket.Conn) {
	l.mu.Lock()
	if l.conn == conn {
		l.conn = nil
	}
	l.mu.Unlock()
}
