package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/pknw/chatroom-server/internal/chat"
)

// Handler upgrades HTTP requests to websocket sessions and wires each one
// into the hub and coordinator.
type Handler struct {
	hub            *Hub
	coord          *chat.Coordinator
	maxMessageSize int64
	upgrader       websocket.Upgrader
}

// NewHandler creates a Handler that accepts the given origins. An empty
// Origin header (same-origin requests) is always accepted; "*" accepts all.
// maxMessageSize caps inbound frame size in bytes.
func NewHandler(hub *Hub, coord *chat.Coordinator, allowedOrigins []string, maxMessageSize int) *Handler {
	return &Handler{
		hub:            hub,
		coord:          coord,
		maxMessageSize: int64(maxMessageSize),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(r.Header.Get("Origin"), allowedOrigins)
			},
		},
	}
}

func originAllowed(origin string, allowed []string) bool {
	if origin == "" {
		return true
	}
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}

// ServeWS handles a websocket connection request.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	client := NewClient(h.hub, h.coord, conn, h.maxMessageSize)
	h.hub.Add(client)
	h.coord.Connect(client.ID)

	go client.WritePump()
	go client.ReadPump()
}
