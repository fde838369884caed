package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"

	"togedog_server/models"
)

const mapRoom = "map"

// MapHub pushes marker changes to every client watching the live map.
type MapHub struct {
	Server *socketio.Server
}

// NewMapHub initializes the Socket.IO server and its map room handlers.
func NewMapHub() *MapHub {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "joinMap", func(s socketio.Conn) {
		log.Printf("Client %s joined the map room", s.ID())
		s.Join(mapRoom)
	})

	server.OnEvent("/", "leaveMap", func(s socketio.Conn) {
		s.Leave(mapRoom)
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("Socket disconnected:", reason)
	})

	return &MapHub{Server: server}
}

// Run serves socket connections until Close is called.
func (h *MapHub) Run() {
	if err := h.Server.Serve(); err != nil {
		log.Printf("Socket server stopped: %v", err)
	}
}

func (h *MapHub) Close() {
	h.Server.Close()
}

// BroadcastMarkerSaved notifies map watchers of a new or moved marker.
func (h *MapHub) BroadcastMarkerSaved(marker *models.Marker) {
	if h == nil {
		return
	}
	h.Server.BroadcastToRoom("/", mapRoom, "markerSaved", marker)
}

// BroadcastMarkerDeleted notifies map watchers that a member's marker is gone.
func (h *MapHub) BroadcastMarkerDeleted(email string) {
	if h == nil {
		return
	}
	h.Server.BroadcastToRoom("/", mapRoom, "markerDeleted", map[string]string{"email": email})
}
