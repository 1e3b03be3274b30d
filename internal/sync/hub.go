package sync

import (
	"context"
	"log"
	"net/http"
	gosync "sync"

	"github.com/gorilla/websocket"

	"sabor-do-para/internal/domain"
)

// Message is what kitchen displays receive. A snapshot replaces the
// board wholesale; new_order additionally drives the arrival alert.
type Message struct {
	Type   string         `json:"type"` // "snapshot" or "new_order"
	Orders []domain.Order `json:"orders,omitempty"`
	Order  *domain.Order  `json:"order,omitempty"`
}

// Hub fans messages out to every connected kitchen display. All displays
// see the same feed; there are no rooms.
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Message
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         gosync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Message, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mu.Unlock()
			return

		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(msg); err != nil {
					log.Printf("[kitchen-ws] write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) BroadcastSnapshot(orders []domain.Order) {
	h.broadcast <- Message{Type: "snapshot", Orders: orders}
}

func (h *Hub) BroadcastNewOrder(order *domain.Order) {
	h.broadcast <- Message{Type: "new_order", Order: order}
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleKitchen upgrades the request and keeps the connection registered
// until the display goes away. Displays only listen; inbound frames are
// drained to detect the close.
func (h *Hub) HandleKitchen(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[kitchen-ws] upgrade error: %v", err)
		return
	}

	h.register <- conn

	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
