package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pknw/chatroom-server/internal/chat"
	"github.com/pknw/chatroom-server/internal/domain"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10
)

// clientEvent is one inbound frame. AckID, when present, asks for an ack
// frame carrying the operation result under the same correlation id.
type clientEvent struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
	AckID   string          `json:"ackId,omitempty"`
}

// ackPayload is the body of an ack frame.
type ackPayload struct {
	AckID string `json:"ackId"`
	chat.Result
}

// Client represents a single websocket connection.
type Client struct {
	ID        string
	hub       *Hub
	coord     *chat.Coordinator
	conn      *websocket.Conn
	send      chan []byte
	readLimit int64
}

// NewClient creates a Client with a fresh connection id.
func NewClient(hub *Hub, coord *chat.Coordinator, conn *websocket.Conn, readLimit int64) *Client {
	return &Client{
		ID:        uuid.New().String(),
		hub:       hub,
		coord:     coord,
		conn:      conn,
		send:      make(chan []byte, 256),
		readLimit: readLimit,
	}
}

// enqueue adds an outbound frame to the client's send queue, dropping it if
// the queue is full. A member that falls behind recovers on its next
// snapshot (join or room switch).
func (c *Client) enqueue(data []byte) {
	select {
	case c.send <- data:
	default:
	}
}

// ReadPump pumps frames from the websocket connection into the coordinator.
// It runs the connection-close path on exit even when the client never sent
// an explicit leave.
func (c *Client) ReadPump() {
	defer func() {
		c.coord.Disconnect(c.ID)
		c.hub.Remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(c.readLimit)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var evt clientEvent
		if err := json.Unmarshal(data, &evt); err != nil {
			continue
		}

		c.dispatch(evt)
	}
}

// dispatch routes one inbound event to the coordinator and acks it when
// asked to. Unknown event types are ignored.
func (c *Client) dispatch(evt clientEvent) {
	switch evt.Type {
	case domain.EventJoin:
		var p struct {
			Username string `json:"username"`
		}
		json.Unmarshal(evt.Payload, &p)
		c.ack(evt, c.coord.Join(c.ID, p.Username))

	case domain.EventJoinRoom:
		var p struct {
			RoomID string `json:"roomId"`
		}
		json.Unmarshal(evt.Payload, &p)
		c.ack(evt, c.coord.SwitchRoom(c.ID, p.RoomID))

	case domain.EventCreateRoom:
		var p struct {
			Name string `json:"name"`
		}
		json.Unmarshal(evt.Payload, &p)
		c.ack(evt, c.coord.CreateRoom(c.ID, p.Name))

	case domain.EventDeleteRoom:
		var p struct {
			RoomID string `json:"roomId"`
		}
		json.Unmarshal(evt.Payload, &p)
		c.ack(evt, c.coord.DeleteRoom(c.ID, p.RoomID))

	case domain.EventMessage:
		var p struct {
			Text string `json:"text"`
		}
		json.Unmarshal(evt.Payload, &p)
		c.ack(evt, c.coord.SendMessage(c.ID, p.Text))

	case domain.EventTypingStart:
		c.coord.SetTyping(c.ID, true)

	case domain.EventTypingStop:
		c.coord.SetTyping(c.ID, false)

	case domain.EventUpdateUsername:
		var p struct {
			Username *string `json:"username"`
			Avatar   *string `json:"avatar"`
		}
		json.Unmarshal(evt.Payload, &p)
		c.ack(evt, c.coord.UpdateProfile(c.ID, p.Username, p.Avatar))

	case domain.EventLeave:
		c.ack(evt, c.coord.Leave(c.ID))
	}
}

// ack sends the operation result back when the frame carried an ackId.
func (c *Client) ack(evt clientEvent, res chat.Result) {
	if evt.AckID == "" {
		return
	}
	c.enqueue(marshalEvent("ack", ackPayload{AckID: evt.AckID, Result: res}))
}

// WritePump pumps frames from the send queue to the websocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
