package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"order_tracker/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Event is the tagged message pushed to every connected client.
// Order is set for create/update events, OrderID for deletes.
type Event struct {
	Type    string        `json:"type"`
	Message string        `json:"message,omitempty"`
	Order   *models.Order `json:"order,omitempty"`
	OrderID uint          `json:"orderId,omitempty"`
}

const (
	EventConnected   = "connected"
	EventOrderCreate = "order_create"
	EventOrderUpdate = "order_update"
	EventOrderDelete = "order_delete"
)

// Hub keeps the set of live WebSocket connections and fans order
// lifecycle events out to all of them. Delivery is best effort: there
// is no persistence, no replay and no acknowledgment; a client that is
// offline at broadcast time reconciles on its next full fetch.
//
// One hub is constructed in main and handed to the handlers; it lives
// as long as the process.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// HandleConnection upgrades the request, registers the connection and
// blocks reading until the client goes away. Clients send nothing
// meaningful after the handshake; the read loop only detects closure.
func (h *Hub) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	total := len(h.clients)
	h.mu.Unlock()
	log.Info().Int("clients", total).Msg("websocket client connected")

	h.send(conn, &Event{Type: EventConnected, Message: "تم الاتصال بنجاح"})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(conn)
	log.Info().Int("clients", h.ClientCount()).Msg("websocket client disconnected")
}

func (h *Hub) BroadcastOrderCreate(order *models.Order) {
	h.broadcast(&Event{Type: EventOrderCreate, Order: order})
}

func (h *Hub) BroadcastOrderUpdate(order *models.Order) {
	h.broadcast(&Event{Type: EventOrderUpdate, Order: order})
}

func (h *Hub) BroadcastOrderDelete(orderID uint) {
	h.broadcast(&Event{Type: EventOrderDelete, OrderID: orderID})
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// broadcast writes the event to every live connection. A failed write
// drops only that connection; the rest still receive the message.
func (h *Hub) broadcast(event *Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("failed to encode event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var failed []*websocket.Conn
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Warn().Err(err).Msg("dropping websocket client after failed send")
			failed = append(failed, conn)
		}
	}
	for _, conn := range failed {
		conn.Close()
		delete(h.clients, conn)
	}

	log.Debug().Str("type", event.Type).Int("clients", len(h.clients)).Msg("event broadcast")
}

// send writes a single message under the hub lock, since gorilla
// connections do not allow concurrent writers.
func (h *Hub) send(conn *websocket.Conn, event *Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; !ok {
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		conn.Close()
		delete(h.clients, conn)
	}
}
