// server/internal/socket/hub.go
package socket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub manages the connected back-office dashboards. Keys are employee
// IDs; access to the map is guarded since handlers and broadcasts run
// on different goroutines.
type Hub struct {
	clients map[string]*websocket.Conn
	mu      sync.RWMutex
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
		logger:  logger,
	}
}

// Register adds a client connection to the hub.
func (h *Hub) Register(employeeID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[employeeID] = conn
	h.logger.Info("websocket client registered", zap.String("employeeID", employeeID))
}

// Unregister removes a client connection from the hub.
func (h *Hub) Unregister(employeeID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[employeeID]; ok {
		delete(h.clients, employeeID)
		h.logger.Info("websocket client unregistered", zap.String("employeeID", employeeID))
	}
}

// StockAlert is the payload pushed to dashboards when an item drops to
// low or zero stock.
type StockAlert struct {
	Type      string    `json:"type"` // "stock_alert"
	ItemID    string    `json:"itemID"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Quantity  int64     `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

// Broadcast sends a message to every connected client. A dead
// connection only costs that one client its message; it will re-sync on
// reconnect.
func (h *Hub) Broadcast(v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("failed to marshal broadcast payload", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for employeeID, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Warn("failed to push to websocket client",
				zap.String("employeeID", employeeID),
				zap.Error(err))
		}
	}
}
