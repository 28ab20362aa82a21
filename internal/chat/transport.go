package chat

// Transport delivers coordinator events to connected clients. A group is the
// set of connections currently in a room; the coordinator updates membership
// exactly at join, switch, leave and disconnect. Deliveries are fire-and-forget:
// the coordinator never waits for them and never retries.
type Transport interface {
	JoinGroup(roomID, connID string)
	LeaveGroup(roomID, connID string)
	ToConn(connID, event string, payload any)
	ToGroup(roomID, event string, payload any)
	ToGroupExcept(roomID, exceptConnID, event string, payload any)
	ToAll(event string, payload any)
}

// Result is the acknowledgement returned to the client that submitted an
// operation. RoomID is only set on successful room creation.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	RoomID  string `json:"roomId,omitempty"`
}

func succeed() Result {
	return Result{Success: true}
}

func fail(err error) Result {
	return Result{Success: false, Error: err.Error()}
}
