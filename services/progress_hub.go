package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// ProgressHub fans daily-progress updates out to a user's open
// websocket connections. Holds no domain state; the engine stays pure.
type ProgressClient struct {
	UserID uint
	Conn   *websocket.Conn
}

type ProgressHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*ProgressClient]struct{}
}

func NewProgressHub() *ProgressHub {
	return &ProgressHub{clients: make(map[uint]map[*ProgressClient]struct{})}
}

func (h *ProgressHub) Register(c *ProgressClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*ProgressClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *ProgressHub) Unregister(c *ProgressClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// BroadcastProgress pushes a payload to every connection the user has
// open. Write errors are ignored; dead connections are reaped by the
// controller's read loop.
func (h *ProgressHub) BroadcastProgress(userID uint, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
