package stream

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 32
)

// Event is one frame on the support feed.
type Event struct {
	Type    string              `json:"type"`
	Ticket  store.Ticket        `json:"ticket"`
	Message store.TicketMessage `json:"message"`
}

const EventMessageAppended = "support.message"

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans new support messages out to every connected dashboard. Slow
// clients are dropped rather than blocking the request that produced the
// message.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	logger  *observability.Logger
}

func NewHub(logger *observability.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

// Broadcast never blocks.
func (h *Hub) Broadcast(ctx context.Context, ticket store.Ticket, message store.TicketMessage) {
	payload, err := json.Marshal(Event{Type: EventMessageAppended, Ticket: ticket, Message: message})
	if err != nil {
		h.logger.Error(ctx, "failed to marshal support event", err)
		return
	}

	h.mu.RLock()
	var slow []*client
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn(ctx, "dropping slow support stream client")
		h.remove(c)
	}
}

// ClientCount is the number of connected dashboards.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Serve owns conn until the peer disconnects or ctx is done.
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn) {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.logger.Info(ctx, "support stream client connected")

	done := make(chan struct{})
	go h.readLoop(ctx, c, done)
	h.writeLoop(ctx, c, done)

	h.remove(c)
	conn.Close()
	h.logger.Info(ctx, "support stream client disconnected")
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// readLoop only drains control frames so pongs and close frames are seen.
func (h *Hub) readLoop(ctx context.Context, c *client, done chan<- struct{}) {
	defer close(done)
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.WarnWithError(ctx, "support stream read error", err)
			}
			return
		}
	}
}

func (h *Hub) writeLoop(ctx context.Context, c *client, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
			return
		case <-done:
			return
		case payload, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too slow"), time.Now().Add(writeWait))
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.logger.WarnWithError(ctx, "support stream write failed", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
