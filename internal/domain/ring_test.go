package domain

import (
	"strconv"
	"testing"
)

func msg(text string) Message {
	return Message{ID: "id-" + text, Username: "tester", Text: text}
}

func TestMessageRing_New(t *testing.T) {
	r := NewMessageRing(10)

	if r.Len() != 0 {
		t.Errorf("Expected empty ring, got %d elements", r.Len())
	}

	if r.cap != 10 {
		t.Errorf("Expected capacity 10, got %d", r.cap)
	}
}

func TestMessageRing_AddAndAll(t *testing.T) {
	r := NewMessageRing(5)

	r.Add(msg("one"))
	r.Add(msg("two"))
	r.Add(msg("three"))

	if r.Len() != 3 {
		t.Fatalf("Expected 3 elements, got %d", r.Len())
	}

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(all))
	}

	// Check order
	if all[0].Text != "one" {
		t.Errorf("Expected 'one' first, got %s", all[0].Text)
	}
	if all[2].Text != "three" {
		t.Errorf("Expected 'three' last, got %s", all[2].Text)
	}
}

func TestMessageRing_Overflow(t *testing.T) {
	r := NewMessageRing(3)

	// Add 5 messages to a capacity-3 ring
	for i := 1; i <= 5; i++ {
		r.Add(msg(strconv.Itoa(i)))
	}

	if r.Len() != 3 {
		t.Fatalf("Expected 3 elements (capped), got %d", r.Len())
	}

	all := r.All()

	// Should only have 3, 4, 5 in order
	expected := []string{"3", "4", "5"}
	for i, exp := range expected {
		if all[i].Text != exp {
			t.Errorf("Position %d: expected %s, got %s", i, exp, all[i].Text)
		}
	}
}

func TestMessageRing_Empty(t *testing.T) {
	r := NewMessageRing(5)

	all := r.All()
	if len(all) != 0 {
		t.Errorf("Expected no messages from empty ring, got %d", len(all))
	}
}

func TestNewMessageID_Sortable(t *testing.T) {
	// IDs created in sequence must sort in creation order
	prev := ""
	for i := 0; i < 100; i++ {
		id := NewMessage("a", "b", "").ID
		if id <= prev {
			t.Fatalf("Expected ids to be strictly increasing, got %s after %s", id, prev)
		}
		prev = id
	}
}
