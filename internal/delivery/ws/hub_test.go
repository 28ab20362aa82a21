package ws

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

// newMockClient creates a client without an actual websocket connection.
func newMockClient(hub *Hub) *Client {
	return &Client{
		ID:   uuid.New().String(),
		hub:  hub,
		conn: nil,
		send: make(chan []byte, 256),
	}
}

// drain reads every queued frame and returns the decoded events.
func drain(t *testing.T, c *Client) []serverEvent {
	t.Helper()
	var events []serverEvent
	for {
		select {
		case data := <-c.send:
			var evt serverEvent
			if err := json.Unmarshal(data, &evt); err != nil {
				t.Fatalf("Bad frame: %v", err)
			}
			events = append(events, evt)
		default:
			return events
		}
	}
}

func TestHub_AddRemove(t *testing.T) {
	hub := NewHub()
	client := newMockClient(hub)

	hub.Add(client)
	if hub.ClientCount() != 1 {
		t.Errorf("Expected 1 client, got %d", hub.ClientCount())
	}

	hub.JoinGroup("general", client.ID)
	hub.Remove(client)

	if hub.ClientCount() != 0 {
		t.Errorf("Expected 0 clients, got %d", hub.ClientCount())
	}
	if hub.GroupCount("general") != 0 {
		t.Error("Expected removal to clear group membership")
	}

	// Double remove must not close the channel twice
	hub.Remove(client)
}

func TestHub_JoinLeaveGroup(t *testing.T) {
	hub := NewHub()
	a := newMockClient(hub)
	b := newMockClient(hub)
	hub.Add(a)
	hub.Add(b)

	hub.JoinGroup("movies", a.ID)
	hub.JoinGroup("movies", b.ID)
	if hub.GroupCount("movies") != 2 {
		t.Errorf("Expected 2 members, got %d", hub.GroupCount("movies"))
	}

	hub.LeaveGroup("movies", a.ID)
	if hub.GroupCount("movies") != 1 {
		t.Errorf("Expected 1 member, got %d", hub.GroupCount("movies"))
	}

	// Joining an unknown client is a no-op
	hub.JoinGroup("movies", "ghost")
	if hub.GroupCount("movies") != 1 {
		t.Error("Expected unknown client join to be ignored")
	}
}

func TestHub_ToConn(t *testing.T) {
	hub := NewHub()
	a := newMockClient(hub)
	b := newMockClient(hub)
	hub.Add(a)
	hub.Add(b)

	hub.ToConn(a.ID, "joined", map[string]string{"x": "y"})

	if got := drain(t, a); len(got) != 1 || got[0].Type != "joined" {
		t.Errorf("Expected a receives one joined event, got %v", got)
	}
	if got := drain(t, b); len(got) != 0 {
		t.Errorf("Expected b receives nothing, got %v", got)
	}
}

func TestHub_ToGroupAndExcept(t *testing.T) {
	hub := NewHub()
	a := newMockClient(hub)
	b := newMockClient(hub)
	c := newMockClient(hub)
	for _, cl := range []*Client{a, b, c} {
		hub.Add(cl)
	}
	hub.JoinGroup("movies", a.ID)
	hub.JoinGroup("movies", b.ID)

	hub.ToGroup("movies", "message", nil)
	if len(drain(t, a)) != 1 || len(drain(t, b)) != 1 {
		t.Error("Expected both group members to receive the event")
	}
	if len(drain(t, c)) != 0 {
		t.Error("Expected non-member to receive nothing")
	}

	hub.ToGroupExcept("movies", a.ID, "typing", nil)
	if len(drain(t, a)) != 0 {
		t.Error("Expected excluded member to receive nothing")
	}
	if len(drain(t, b)) != 1 {
		t.Error("Expected other member to receive the event")
	}
}

func TestHub_ToAll(t *testing.T) {
	hub := NewHub()
	a := newMockClient(hub)
	b := newMockClient(hub)
	hub.Add(a)
	hub.Add(b)
	hub.JoinGroup("movies", a.ID)

	hub.ToAll("rooms_updated", nil)

	if len(drain(t, a)) != 1 || len(drain(t, b)) != 1 {
		t.Error("Expected every connected client to receive the event")
	}
}

func TestHub_DropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	client := &Client{
		ID:   uuid.New().String(),
		hub:  hub,
		send: make(chan []byte, 1),
	}
	hub.Add(client)

	// Second send must be dropped, not block or panic
	hub.ToConn(client.ID, "message", nil)
	hub.ToConn(client.ID, "message", nil)

	if got := drain(t, client); len(got) != 1 {
		t.Errorf("Expected exactly 1 queued frame, got %d", len(got))
	}
}
