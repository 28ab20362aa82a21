package ws

import (
	"encoding/json"
	"sync"
)

// serverEvent is one outbound frame.
type serverEvent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Hub tracks the set of live clients and the per-room delivery groups.
// It implements chat.Transport: the coordinator adjusts group membership at
// join/switch/leave/disconnect and addresses deliveries to a connection, a
// group, or everyone. Sends enqueue into each client's buffered channel and
// drop when it is full.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	groups  map[string]map[string]*Client
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		groups:  make(map[string]map[string]*Client),
	}
}

// Add registers a client with the hub.
func (h *Hub) Add(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID] = c
}

// Remove drops a client from the hub and from every group, and closes its
// send channel. Safe to call twice: the second call is a no-op.
func (h *Hub) Remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c.ID]; !ok {
		return
	}
	delete(h.clients, c.ID)
	for roomID, group := range h.groups {
		if _, ok := group[c.ID]; ok {
			delete(group, c.ID)
			if len(group) == 0 {
				delete(h.groups, roomID)
			}
		}
	}
	close(c.send)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// GroupCount returns the number of members in a room's group.
func (h *Hub) GroupCount(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.groups[roomID])
}

// JoinGroup adds the connection to a room's delivery group.
func (h *Hub) JoinGroup(roomID, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.clients[connID]
	if !ok {
		return
	}
	group, ok := h.groups[roomID]
	if !ok {
		group = make(map[string]*Client)
		h.groups[roomID] = group
	}
	group[connID] = c
}

// LeaveGroup removes the connection from a room's delivery group.
func (h *Hub) LeaveGroup(roomID, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	group, ok := h.groups[roomID]
	if !ok {
		return
	}
	delete(group, connID)
	if len(group) == 0 {
		delete(h.groups, roomID)
	}
}

// ToConn delivers an event to one connection.
func (h *Hub) ToConn(connID, event string, payload any) {
	data := marshalEvent(event, payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	if c, ok := h.clients[connID]; ok {
		c.enqueue(data)
	}
}

// ToGroup delivers an event to every current member of a room.
func (h *Hub) ToGroup(roomID, event string, payload any) {
	data := marshalEvent(event, payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.groups[roomID] {
		c.enqueue(data)
	}
}

// ToGroupExcept delivers an event to every member of a room but one.
func (h *Hub) ToGroupExcept(roomID, exceptConnID, event string, payload any) {
	data := marshalEvent(event, payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, c := range h.groups[roomID] {
		if id != exceptConnID {
			c.enqueue(data)
		}
	}
}

// ToAll delivers an event to every connected client regardless of room.
func (h *Hub) ToAll(event string, payload any) {
	data := marshalEvent(event, payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		c.enqueue(data)
	}
}

func marshalEvent(event string, payload any) []byte {
	data, _ := json.Marshal(serverEvent{Type: event, Payload: payload})
	return data
}
