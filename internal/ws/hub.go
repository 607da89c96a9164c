package ws

import (
	"encoding/json"
	"sync"

	"tasklist_api/internal/logger"
)

// Hub fans task events out to the connected clients of each user. It holds
// no task state; the database stays the single source of truth.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.UserID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.UserID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.UserID]
	if !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.UserID)
	}
}

// Publish sends the event to every client of userID. Slow clients are
// skipped rather than blocking the request that produced the event.
func (h *Hub) Publish(userID string, ev TaskEvent) {
	msg, err := json.Marshal(ev)
	if err != nil {
		logger.Error("ws: marshal event", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[userID] {
		select {
		case c.Send <- msg:
		default:
			logger.Warn("ws: dropping event, client send buffer full", "user_id", userID)
		}
	}
}

// ClientCount reports connected clients for a user.
func (h *Hub) ClientCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}
