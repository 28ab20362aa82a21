package domain

// Connection is one client's live session with the coordinator. A record
// exists from connection-open to connection-close; the username stays empty
// until the client completes the join handshake.
type Connection struct {
	ID       string
	Username string
	RoomID   string
	Avatar   string // data URI or empty
	Typing   bool
}

// Joined reports whether the connection has completed the join handshake.
func (c *Connection) Joined() bool {
	return c.Username != ""
}

// RoomUser is the member-list projection of a joined connection.
type RoomUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}
