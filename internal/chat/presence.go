package chat

import (
	"github.com/pknw/chatroom-server/internal/domain"
)

// Presence derives member and typing views from the registry on demand.
// There is no cached state: every call reflects the registry at call time.
type Presence struct {
	registry *Registry
}

// NewPresence creates a presence projector over the given registry.
func NewPresence(registry *Registry) *Presence {
	return &Presence{registry: registry}
}

// Members returns the joined connections currently in roomID, projected to
// (id, username, avatar). Connections that have not completed the join
// handshake are never included.
func (p *Presence) Members(roomID string) []domain.RoomUser {
	users := make([]domain.RoomUser, 0)
	for _, conn := range p.registry.All() {
		if conn.Joined() && conn.RoomID == roomID {
			users = append(users, domain.RoomUser{
				ID:       conn.ID,
				Username: conn.Username,
				Avatar:   conn.Avatar,
			})
		}
	}
	return users
}

// TypingUsernames returns the names of members of roomID with the typing
// flag set.
func (p *Presence) TypingUsernames(roomID string) []string {
	names := make([]string, 0)
	for _, conn := range p.registry.All() {
		if conn.Joined() && conn.RoomID == roomID && conn.Typing {
			names = append(names, conn.Username)
		}
	}
	return names
}
