package domain

// Client-issued event names.
const (
	EventJoin           = "join"
	EventJoinRoom       = "join_room"
	EventCreateRoom     = "create_room"
	EventDeleteRoom     = "delete_room"
	EventMessage        = "message"
	EventTypingStart    = "typing_start"
	EventTypingStop     = "typing_stop"
	EventUpdateUsername = "update_username"
	EventLeave          = "leave"
)

// Coordinator-issued event names.
const (
	EventJoined          = "joined"
	EventRoomJoined      = "room_joined"
	EventRoomCreated     = "room_created"
	EventRoomsUpdated    = "rooms_updated"
	EventRoomDeleted     = "room_deleted"
	EventUserJoined      = "user_joined"
	EventUserLeft        = "user_left"
	EventTyping          = "typing"
	EventUsernameUpdated = "username_updated"
)

// JoinedPayload is the full snapshot sent to a client on join.
type JoinedPayload struct {
	Messages        []Message  `json:"messages"`
	Users           []RoomUser `json:"users"`
	Rooms           []RoomInfo `json:"rooms"`
	CurrentRoomID   string     `json:"currentRoomId"`
	CurrentRoomName string     `json:"currentRoomName"`
}

// RoomJoinedPayload is the full snapshot sent to a client on room switch.
type RoomJoinedPayload struct {
	RoomID    string     `json:"roomId"`
	RoomName  string     `json:"roomName"`
	CreatorID string     `json:"creatorId"`
	Messages  []Message  `json:"messages"`
	Users     []RoomUser `json:"users"`
}

// RoomCreatedPayload confirms room creation to the creator.
type RoomCreatedPayload struct {
	RoomID   string `json:"roomId"`
	RoomName string `json:"roomName"`
}

// RoomsUpdatedPayload carries the global room list, sent to every
// connected client on create and delete.
type RoomsUpdatedPayload struct {
	Rooms []RoomInfo `json:"rooms"`
}

// RoomDeletedPayload tells former members which room replaces the deleted one.
type RoomDeletedPayload struct {
	RoomID    string `json:"roomId"`
	NewRoomID string `json:"newRoomId"`
}

// UserEventPayload is scoped to the affected room for user_joined/user_left.
type UserEventPayload struct {
	Username string     `json:"username"`
	Users    []RoomUser `json:"users"`
}

// TypingPayload lists who is typing in the room, excluding the recipient-typer.
type TypingPayload struct {
	Usernames []string `json:"usernames"`
}

// UsernameUpdatedPayload announces a profile change to the whole room.
type UsernameUpdatedPayload struct {
	SocketID    string     `json:"socketId"`
	OldUsername string     `json:"oldUsername"`
	NewUsername string     `json:"newUsername"`
	Users       []RoomUser `json:"users"`
}
