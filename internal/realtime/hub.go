package realtime

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/goalfield/field-scheduler/internal/metrics"
)

const (
	publishQueueSize = 100
	clientQueueSize  = 16
)

// Hub fans published events out to every connected websocket client.
type Hub struct {
	log      zerolog.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}

	queue chan []byte
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub(log zerolog.Logger) *Hub {
	h := &Hub{
		log: log.With().Str("component", "realtime").Logger(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Events are public broadcast data; any origin may listen.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
		queue:   make(chan []byte, publishQueueSize),
	}

	go h.worker()
	return h
}

// Publish enqueues the event. Full queue → dropped, never blocked.
func (h *Hub) Publish(event string, payload any) {
	raw, err := json.Marshal(Message{Event: event, Data: payload})
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("failed to encode event")
		return
	}

	metrics.IncEventPublished(event)

	select {
	case h.queue <- raw:
	default:
		metrics.IncEventDropped()
		h.log.Warn().Str("event", event).Msg("event queue full, dropping event")
	}
}

func (h *Hub) worker() {
	for raw := range h.queue {
		h.broadcastRaw(raw)
	}
}

func (h *Hub) broadcastRaw(raw []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- raw:
		default:
			// Slow consumer; skip rather than stall the broadcast.
			metrics.IncEventDropped()
		}
	}
}

// ClientCount reports currently connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleWS upgrades the request and subscribes the connection until it
// closes. No acks, no per-client filtering.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	cl := &client{
		conn: conn,
		send: make(chan []byte, clientQueueSize),
	}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()

	h.log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("client connected")

	go h.writePump(cl)
	h.readPump(cl)
}

func (h *Hub) writePump(cl *client) {
	for raw := range cl.send {
		if err := cl.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
			return
		}
	}
}

// readPump discards inbound frames; the channel is server-push only.
// It exists to notice the close handshake.
func (h *Hub) readPump(cl *client) {
	defer h.drop(cl)

	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) drop(cl *client) {
	h.mu.Lock()
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
	h.mu.Unlock()

	cl.conn.Close()
	h.log.Debug().Msg("client disconnected")
}
