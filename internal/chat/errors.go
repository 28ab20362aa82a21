package chat

import "errors"

// Precondition and validation failures reported synchronously in acks.
// The texts are part of the wire contract with the client.
var (
	ErrUsernameRequired  = errors.New("Username required")
	ErrAlreadyJoined     = errors.New("Already joined")
	ErrJoinFirst         = errors.New("Join first")
	ErrRoomNotFound      = errors.New("Room not found")
	ErrRoomNameRequired  = errors.New("Room name required")
	ErrRoomProtected     = errors.New("Cannot delete general")
	ErrNotCreator        = errors.New("Only creator can delete")
	ErrNoRoom            = errors.New("No room")
	ErrUnknownConnection = errors.New("Unknown connection")
)
