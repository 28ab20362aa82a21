package domain

// Room is a named channel with its own bounded message history. Membership
// is not stored here; it is derived from connections' RoomID fields.
type Room struct {
	ID        string
	Name      string
	CreatorID string // empty for the default room: no one may delete it

	log *MessageRing
}

// NewRoom creates a room with an empty log capped at historySize messages.
func NewRoom(id, name, creatorID string, historySize int) *Room {
	return &Room{
		ID:        id,
		Name:      name,
		CreatorID: creatorID,
		log:       NewMessageRing(historySize),
	}
}

// Append adds a message to the log, evicting the oldest when full.
func (r *Room) Append(msg Message) {
	r.log.Add(msg)
}

// Messages returns the log in arrival order, oldest first.
func (r *Room) Messages() []Message {
	return r.log.All()
}

// LogLen returns the current log length.
func (r *Room) LogLen() int {
	return r.log.Len()
}

// Info returns the room-list projection of the room.
func (r *Room) Info() RoomInfo {
	return RoomInfo{ID: r.ID, Name: r.Name, CreatorID: r.CreatorID}
}

// RoomInfo is the projection published in global room lists.
type RoomInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatorID string `json:"creatorId"`
}
