package chat

import (
	"strings"
	"testing"

	"github.com/pknw/chatroom-server/internal/domain"
)

func TestNewStore_CreatesDefaultRoom(t *testing.T) {
	s := NewStore(domain.MaxHistorySize)

	room, ok := s.Get(domain.DefaultRoomID)
	if !ok {
		t.Fatal("Expected the default room to exist at startup")
	}
	if room.Name != domain.DefaultRoomName {
		t.Errorf("Expected name %q, got %q", domain.DefaultRoomName, room.Name)
	}
	if room.CreatorID != "" {
		t.Errorf("Expected empty creator id, got %q", room.CreatorID)
	}
	if s.Len() != 1 {
		t.Errorf("Expected exactly 1 room, got %d", s.Len())
	}
}

func TestStore_CreateDerivesSlug(t *testing.T) {
	s := NewStore(domain.MaxHistorySize)

	tests := []struct {
		name string
		want string
	}{
		{"Movies 2024!!", "movies-2024"},
		{"My   Cool Room", "my-cool-room"},
		{"UPPER", "upper"},
		{"hyphen-ated", "hyphen-ated"},
	}

	for _, tc := range tests {
		room := s.Create(tc.name, "creator")
		if room.ID != tc.want {
			t.Errorf("Create(%q): expected id %q, got %q", tc.name, tc.want, room.ID)
		}
		if room.Name != tc.name {
			t.Errorf("Create(%q): expected display name kept, got %q", tc.name, room.Name)
		}
		if room.CreatorID != "creator" {
			t.Errorf("Create(%q): expected creator recorded, got %q", tc.name, room.CreatorID)
		}
	}
}

func TestStore_CreateReservedSlugFallsBack(t *testing.T) {
	s := NewStore(domain.MaxHistorySize)

	room := s.Create("general", "creator")
	if room.ID == domain.DefaultRoomID {
		t.Fatal("Expected a generated id for the reserved slug")
	}
	if !strings.HasPrefix(room.ID, "room-") {
		t.Errorf("Expected a generated room- id, got %q", room.ID)
	}
	if _, ok := s.Get(room.ID); !ok {
		t.Error("Expected the room committed under its generated id")
	}
}

func TestStore_CreateCollidingSlugFallsBack(t *testing.T) {
	s := NewStore(domain.MaxHistorySize)

	first := s.Create("Movies", "creator")
	second := s.Create("movies", "creator")

	if first.ID != "movies" {
		t.Fatalf("Expected first room id movies, got %q", first.ID)
	}
	if second.ID == first.ID {
		t.Fatal("Expected a distinct id for the colliding name")
	}
	if _, ok := s.Get(second.ID); !ok {
		t.Error("Expected the second room committed")
	}
}

func TestStore_CreateSymbolOnlyNameFallsBack(t *testing.T) {
	s := NewStore(domain.MaxHistorySize)

	room := s.Create("!!!", "creator")
	if room.ID == "" {
		t.Fatal("Expected a generated id for a name that slugs to nothing")
	}
	if !strings.HasPrefix(room.ID, "room-") {
		t.Errorf("Expected a generated room- id, got %q", room.ID)
	}
}

func TestStore_CreateTruncatesLongNames(t *testing.T) {
	s := NewStore(domain.MaxHistorySize)

	long := strings.Repeat("a", domain.MaxRoomNameLen+20)
	room := s.Create(long, "creator")
	if got := len([]rune(room.Name)); got != domain.MaxRoomNameLen {
		t.Errorf("Expected name truncated to %d runes, got %d", domain.MaxRoomNameLen, got)
	}
}

func TestStore_Delete(t *testing.T) {
	s := NewStore(domain.MaxHistorySize)
	room := s.Create("Movies", "creator")

	if err := s.Delete("no-such-room"); err != ErrRoomNotFound {
		t.Errorf("Expected ErrRoomNotFound, got %v", err)
	}
	if err := s.Delete(domain.DefaultRoomID); err != ErrRoomProtected {
		t.Errorf("Expected ErrRoomProtected, got %v", err)
	}
	if err := s.Delete(room.ID); err != nil {
		t.Errorf("Expected delete to succeed, got %v", err)
	}
	if _, ok := s.Get(room.ID); ok {
		t.Error("Expected the room gone after delete")
	}
	if _, ok := s.Get(domain.DefaultRoomID); !ok {
		t.Error("Expected the default room to survive")
	}
}

func TestStore_ListInCreationOrder(t *testing.T) {
	s := NewStore(domain.MaxHistorySize)
	s.Create("Bravo", "c1")
	s.Create("Alpha", "c2")

	list := s.List()
	if len(list) != 3 {
		t.Fatalf("Expected 3 rooms, got %d", len(list))
	}
	want := []string{domain.DefaultRoomID, "bravo", "alpha"}
	for i, id := range want {
		if list[i].ID != id {
			t.Errorf("Position %d: expected %q, got %q", i, id, list[i].ID)
		}
	}
}
