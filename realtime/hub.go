package realtime

import (
	"encoding/json"
	"log"
	"sync"
)

// Event is the frame pushed to connected clients.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub is the in-memory connection registry: user id to the set of that
// user's open connections. It is process-local; broadcasts only reach
// connections attached to this instance.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]bool
}

// NewHub creates an empty connection registry.
func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[*Client]bool)}
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[client.userID] == nil {
		h.clients[client.userID] = make(map[*Client]bool)
	}
	h.clients[client.userID][client] = true
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[client.userID]
	if !ok {
		return
	}
	if set[client] {
		delete(set, client)
		close(client.send)
	}
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
}

// BroadcastToAll sends the event to every open connection.
func (h *Hub) BroadcastToAll(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal broadcast event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, set := range h.clients {
		for client := range set {
			client.enqueue(payload)
		}
	}
}

// BroadcastToWard sends the event to every connection whose join handshake
// specified the given ward. Connections without a ward tag never receive
// ward-scoped events.
func (h *Hub) BroadcastToWard(wardID string, event Event) {
	if wardID == "" {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal broadcast event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, set := range h.clients {
		for client := range set {
			if client.WardID() == wardID {
				client.enqueue(payload)
			}
		}
	}
}

// BroadcastToUser sends the event to all of a user's open connections.
// A silent no-op when the user has none; the event is dropped, not queued.
func (h *Hub) BroadcastToUser(userID string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal broadcast event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[userID] {
		client.enqueue(payload)
	}
}

// ConnectionCount reports the number of open connections for a user.
func (h *Hub) ConnectionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}
