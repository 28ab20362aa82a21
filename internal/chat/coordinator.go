package chat

import (
	"log"
	"strings"
	"sync"

	"github.com/pknw/chatroom-server/internal/domain"
)

// Coordinator is the room/presence/broadcast engine. Every client-facing
// operation passes through it. The registry and room store form one
// consistency domain behind the coordinator's mutex: each operation reads
// and writes both as an indivisible unit, and no blocking I/O happens while
// the mutex is held (transport deliveries only enqueue into per-connection
// buffers).
type Coordinator struct {
	mu        sync.Mutex
	registry  *Registry
	rooms     *Store
	presence  *Presence
	transport Transport
}

// New creates a coordinator with the permanent default room in place.
// historySize caps each room's message log.
func New(transport Transport, historySize int) *Coordinator {
	registry := NewRegistry()
	return &Coordinator{
		registry:  registry,
		rooms:     NewStore(historySize),
		presence:  NewPresence(registry),
		transport: transport,
	}
}

// Connect registers a fresh, unjoined connection. Called at connection-open.
func (c *Coordinator) Connect(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registry.Register(id)
}

// Disconnect removes the connection entirely, notifying its former room if
// it was joined. Called at connection-close, whether or not the client ever
// issued a leave.
func (c *Coordinator) Disconnect(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, ok := c.registry.Lookup(id)
	if !ok {
		return
	}
	username, roomID := conn.Username, conn.RoomID
	c.registry.Remove(id)

	if username != "" && roomID != "" {
		c.transport.LeaveGroup(roomID, id)
		c.transport.ToGroup(roomID, domain.EventUserLeft, domain.UserEventPayload{
			Username: username,
			Users:    c.presence.Members(roomID),
		})
	}
}

// Join completes the handshake: the connection gets its display name and is
// placed in the default room. A second join without an intervening leave is
// an error, so a caller cannot silently lose the room history it expects.
func (c *Coordinator) Join(id, username string) Result {
	username = strings.TrimSpace(username)
	if username == "" {
		return fail(ErrUsernameRequired)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	conn, ok := c.registry.Lookup(id)
	if !ok {
		return c.unknownConn(id, "join")
	}
	if conn.Joined() {
		return fail(ErrAlreadyJoined)
	}

	conn.Username = username
	conn.RoomID = domain.DefaultRoomID
	c.transport.JoinGroup(domain.DefaultRoomID, id)

	room, _ := c.rooms.Get(domain.DefaultRoomID)
	users := c.presence.Members(room.ID)

	c.transport.ToConn(id, domain.EventJoined, domain.JoinedPayload{
		Messages:        room.Messages(),
		Users:           users,
		Rooms:           c.rooms.List(),
		CurrentRoomID:   room.ID,
		CurrentRoomName: room.Name,
	})
	c.transport.ToGroupExcept(room.ID, id, domain.EventUserJoined, domain.UserEventPayload{
		Username: username,
		Users:    users,
	})
	return succeed()
}

// SwitchRoom moves the connection to roomID. Switching to the current room
// is a successful no-op.
func (c *Coordinator) SwitchRoom(id, roomID string) Result {
	roomID = strings.TrimSpace(roomID)

	c.mu.Lock()
	defer c.mu.Unlock()

	conn, ok := c.registry.Lookup(id)
	if !ok {
		return c.unknownConn(id, "join_room")
	}
	if !conn.Joined() {
		return fail(ErrJoinFirst)
	}
	room, ok := c.rooms.Get(roomID)
	if roomID == "" || !ok {
		return fail(ErrRoomNotFound)
	}
	if conn.RoomID == roomID {
		return succeed()
	}

	c.switchLocked(conn, room)
	return succeed()
}

// switchLocked performs the room transition: departure notice to the old
// room, typing flag cleared, arrival notice and full snapshot for the new.
// Caller must hold c.mu.
func (c *Coordinator) switchLocked(conn *domain.Connection, room *domain.Room) {
	old := conn.RoomID
	c.transport.LeaveGroup(old, conn.ID)
	conn.RoomID = room.ID
	conn.Typing = false
	c.transport.ToGroup(old, domain.EventUserLeft, domain.UserEventPayload{
		Username: conn.Username,
		Users:    c.presence.Members(old),
	})

	c.transport.JoinGroup(room.ID, conn.ID)
	users := c.presence.Members(room.ID)
	c.transport.ToGroupExcept(room.ID, conn.ID, domain.EventUserJoined, domain.UserEventPayload{
		Username: conn.Username,
		Users:    users,
	})
	c.transport.ToConn(conn.ID, domain.EventRoomJoined, domain.RoomJoinedPayload{
		RoomID:    room.ID,
		RoomName:  room.Name,
		CreatorID: room.CreatorID,
		Messages:  room.Messages(),
		Users:     users,
	})
}

// CreateRoom creates a room named name, publishes the updated global room
// list to everyone, and auto-joins the requester into the new room.
func (c *Coordinator) CreateRoom(id, name string) Result {
	name = strings.TrimSpace(name)

	c.mu.Lock()
	defer c.mu.Unlock()

	conn, ok := c.registry.Lookup(id)
	if !ok {
		return c.unknownConn(id, "create_room")
	}
	if !conn.Joined() {
		return fail(ErrJoinFirst)
	}
	if name == "" {
		return fail(ErrRoomNameRequired)
	}

	room := c.rooms.Create(name, id)
	c.transport.ToAll(domain.EventRoomsUpdated, domain.RoomsUpdatedPayload{Rooms: c.rooms.List()})
	c.transport.ToConn(id, domain.EventRoomCreated, domain.RoomCreatedPayload{
		RoomID:   room.ID,
		RoomName: room.Name,
	})
	c.switchLocked(conn, room)

	res := succeed()
	res.RoomID = room.ID
	return res
}

// DeleteRoom removes roomID if the requester created it. The default room is
// protected. Every displaced member is reassigned into the default room as
// one step: the room list update and room_deleted notice go out first, then
// each former member receives a default-room snapshot as if freshly switched.
func (c *Coordinator) DeleteRoom(id, roomID string) Result {
	roomID = strings.TrimSpace(roomID)

	c.mu.Lock()
	defer c.mu.Unlock()

	conn, ok := c.registry.Lookup(id)
	if !ok {
		return c.unknownConn(id, "delete_room")
	}
	if !conn.Joined() {
		return fail(ErrJoinFirst)
	}
	if roomID == domain.DefaultRoomID {
		return fail(ErrRoomProtected)
	}
	room, ok := c.rooms.Get(roomID)
	if !ok {
		return fail(ErrRoomNotFound)
	}
	if room.CreatorID != id {
		return fail(ErrNotCreator)
	}

	displaced := c.registry.InRoom(roomID)
	if err := c.rooms.Delete(roomID); err != nil {
		return fail(err)
	}

	c.transport.ToAll(domain.EventRoomsUpdated, domain.RoomsUpdatedPayload{Rooms: c.rooms.List()})
	c.transport.ToGroup(roomID, domain.EventRoomDeleted, domain.RoomDeletedPayload{
		RoomID:    roomID,
		NewRoomID: domain.DefaultRoomID,
	})

	def, _ := c.rooms.Get(domain.DefaultRoomID)
	for _, m := range displaced {
		c.transport.LeaveGroup(roomID, m.ID)
		m.RoomID = def.ID
		m.Typing = false
		c.transport.JoinGroup(def.ID, m.ID)
	}
	users := c.presence.Members(def.ID)
	for _, m := range displaced {
		c.transport.ToConn(m.ID, domain.EventRoomJoined, domain.RoomJoinedPayload{
			RoomID:    def.ID,
			RoomName:  def.Name,
			CreatorID: def.CreatorID,
			Messages:  def.Messages(),
			Users:     users,
		})
	}
	return succeed()
}

// SendMessage validates, stamps, stores and broadcasts a chat message to
// every current member of the sender's room, the sender included. Appending
// and broadcasting happen under the mutex, so members observe messages of a
// room in log order.
func (c *Coordinator) SendMessage(id, text string) Result {
	text = strings.TrimSpace(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	conn, ok := c.registry.Lookup(id)
	if !ok {
		return c.unknownConn(id, "message")
	}
	if !conn.Joined() {
		return fail(ErrJoinFirst)
	}
	if text == "" {
		// Empty after trimming: a no-op with a failure-shaped result
		return Result{Success: false}
	}
	room, ok := c.rooms.Get(conn.RoomID)
	if conn.RoomID == "" || !ok {
		return fail(ErrNoRoom)
	}

	msg := domain.NewMessage(conn.Username, text, conn.Avatar)
	room.Append(msg)
	c.transport.ToGroup(room.ID, domain.EventMessage, msg)
	return succeed()
}

// SetTyping updates the typing flag and tells the room's other members who
// is typing now. Typing pings from unjoined connections are expected and
// harmless, so they are dropped without an error.
func (c *Coordinator) SetTyping(id string, typing bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, ok := c.registry.Lookup(id)
	if !ok || !conn.Joined() || conn.RoomID == "" {
		return
	}
	conn.Typing = typing
	c.transport.ToGroupExcept(conn.RoomID, id, domain.EventTyping, domain.TypingPayload{
		Usernames: c.presence.TypingUsernames(conn.RoomID),
	})
}

// UpdateProfile applies a new display name and/or avatar atomically and
// notifies the room. A nil username keeps the current name; an avatar of ""
// clears it. Past messages keep the name and avatar they were sent with.
func (c *Coordinator) UpdateProfile(id string, username, avatar *string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, ok := c.registry.Lookup(id)
	if !ok {
		return c.unknownConn(id, "update_username")
	}
	if !conn.Joined() || conn.RoomID == "" {
		return fail(ErrJoinFirst)
	}

	newName := conn.Username
	if username != nil {
		newName = strings.TrimSpace(*username)
	}
	if newName == "" {
		return fail(ErrUsernameRequired)
	}

	oldName := conn.Username
	conn.Username = newName
	if avatar != nil {
		conn.Avatar = *avatar
	}

	c.transport.ToGroup(conn.RoomID, domain.EventUsernameUpdated, domain.UsernameUpdatedPayload{
		SocketID:    id,
		OldUsername: oldName,
		NewUsername: newName,
		Users:       c.presence.Members(conn.RoomID),
	})
	return succeed()
}

// Leave returns the connection to the anonymous state, notifying its former
// room. Leaving while anonymous is a successful no-op. The connection record
// itself survives until connection-close.
func (c *Coordinator) Leave(id string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, ok := c.registry.Lookup(id)
	if !ok {
		return c.unknownConn(id, "leave")
	}
	if !conn.Joined() || conn.RoomID == "" {
		return succeed()
	}

	roomID, username := conn.RoomID, conn.Username
	conn.Username = ""
	conn.RoomID = ""
	conn.Avatar = ""
	conn.Typing = false

	c.transport.LeaveGroup(roomID, id)
	c.transport.ToGroup(roomID, domain.EventUserLeft, domain.UserEventPayload{
		Username: username,
		Users:    c.presence.Members(roomID),
	})
	return succeed()
}

// Stats returns the current connection and room counts.
func (c *Coordinator) Stats() (connections, rooms int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.Len(), c.rooms.Len()
}

// unknownConn handles lookups for ids the registry has never seen. With
// registration tied to connection-open this is a logic error, so it is
// logged and the operation fails without touching state.
func (c *Coordinator) unknownConn(id, op string) Result {
	log.Printf("chat: unknown connection %s in %s", id, op)
	return fail(ErrUnknownConnection)
}
