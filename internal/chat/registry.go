package chat

import (
	"github.com/pknw/chatroom-server/internal/domain"
)

// Registry tracks every live connection. Registration order is retained so
// that presence projections iterate deterministically between mutations.
// The registry is not safe for concurrent use on its own: the coordinator's
// mutex guards it together with the room store.
type Registry struct {
	conns map[string]*domain.Connection
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]*domain.Connection),
	}
}

// Register creates an unjoined connection record for the given id.
func (r *Registry) Register(id string) *domain.Connection {
	conn := &domain.Connection{ID: id}
	r.conns[id] = conn
	r.order = append(r.order, id)
	return conn
}

// Lookup returns the connection for id, if it exists.
func (r *Registry) Lookup(id string) (*domain.Connection, bool) {
	conn, ok := r.conns[id]
	return conn, ok
}

// Remove deletes the connection record for id.
func (r *Registry) Remove(id string) {
	if _, ok := r.conns[id]; !ok {
		return
	}
	delete(r.conns, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// All returns every connection in registration order.
func (r *Registry) All() []*domain.Connection {
	result := make([]*domain.Connection, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.conns[id])
	}
	return result
}

// InRoom returns every connection whose current room is roomID, in
// registration order.
func (r *Registry) InRoom(roomID string) []*domain.Connection {
	var result []*domain.Connection
	for _, id := range r.order {
		if conn := r.conns[id]; conn.RoomID == roomID {
			result = append(result, conn)
		}
	}
	return result
}

// Len returns the number of live connections.
func (r *Registry) Len() int {
	return len(r.conns)
}
