package handlers

import (
	"log"

	"Parola/services/game"
	socketio_types "Parola/services/socket_io/types"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandleDisconnecting applies leave semantics for a dropped connection and
// removes it from the connection map.
func HandleDisconnecting(reg *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return guarded("disconnecting", func(args ...interface{}) {
		connID := string(client.Id())
		log.Printf("[DISCONNECT] Connection %s closing", connID)

		if room, ok := reg.FindByConnection(connID); ok {
			room.Leave(connID)
		}
		sio.RemoveConnection(connID)
	})
}
