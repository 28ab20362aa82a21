package domain

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Message is a chat message stored in exactly one room's log. It is
// immutable once created: the author's username and avatar are snapshots
// taken at send time, never rewritten when the author renames.
type Message struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
	Avatar    string `json:"avatar,omitempty"`
}

// NewMessageID returns a ULID for the given creation instant. ULIDs sort
// lexicographically by time with a random tail to break same-millisecond ties.
func NewMessageID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String()
}

// NewMessage builds a message stamped with the current wall clock.
func NewMessage(username, text, avatar string) Message {
	now := time.Now()
	return Message{
		ID:        NewMessageID(now),
		Username:  username,
		Text:      text,
		Timestamp: now.UnixMilli(),
		Avatar:    avatar,
	}
}
