package chat

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pknw/chatroom-server/internal/domain"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	slugStrip     = regexp.MustCompile(`[^a-z0-9-]`)
)

// Store holds every room keyed by id, in creation order. Like the registry
// it carries no lock of its own; the coordinator's mutex guards both.
type Store struct {
	rooms       map[string]*domain.Room
	order       []string
	historySize int
}

// NewStore creates a store holding only the permanent default room. The
// default room has an empty creator id, meaning no one may delete it.
func NewStore(historySize int) *Store {
	s := &Store{
		rooms:       make(map[string]*domain.Room),
		historySize: historySize,
	}
	s.add(domain.NewRoom(domain.DefaultRoomID, domain.DefaultRoomName, "", historySize))
	return s
}

func (s *Store) add(room *domain.Room) {
	s.rooms[room.ID] = room
	s.order = append(s.order, room.ID)
}

// slugify derives a room id candidate from a display name: lowercased,
// whitespace runs collapsed to a hyphen, everything outside [a-z0-9-] dropped.
func slugify(name string) string {
	s := strings.ToLower(name)
	s = whitespaceRun.ReplaceAllString(s, "-")
	return slugStrip.ReplaceAllString(s, "")
}

// generatedID returns a timestamp-plus-random-suffix room id. Callers must
// still check it against the store before commit.
func generatedID() string {
	b := make([]byte, 2)
	rand.Read(b)
	return fmt.Sprintf("room-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(b))
}

// Create adds a room named name (truncated to 80 runes) created by creatorID.
// The slug of the name becomes the id unless it is empty, reserved, or taken,
// in which case a generated id is used, regenerated until unused.
func (s *Store) Create(name, creatorID string) *domain.Room {
	if runes := []rune(name); len(runes) > domain.MaxRoomNameLen {
		name = string(runes[:domain.MaxRoomNameLen])
	}

	id := slugify(name)
	if id == "" || id == domain.DefaultRoomID {
		id = generatedID()
	}
	for {
		if _, taken := s.rooms[id]; !taken {
			break
		}
		id = generatedID()
	}

	room := domain.NewRoom(id, name, creatorID, s.historySize)
	s.add(room)
	return room
}

// Get returns the room for id, if it exists.
func (s *Store) Get(id string) (*domain.Room, bool) {
	room, ok := s.rooms[id]
	return room, ok
}

// Delete removes the room for id. The default room is protected. Membership
// is derived state, so reassigning displaced connections is the caller's job.
func (s *Store) Delete(id string) error {
	if id == domain.DefaultRoomID {
		return ErrRoomProtected
	}
	if _, ok := s.rooms[id]; !ok {
		return ErrRoomNotFound
	}
	delete(s.rooms, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns every room's projection in creation order.
func (s *Store) List() []domain.RoomInfo {
	result := make([]domain.RoomInfo, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.rooms[id].Info())
	}
	return result
}

// Len returns the number of rooms.
func (s *Store) Len() int {
	return len(s.rooms)
}
