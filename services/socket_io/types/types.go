package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer wraps the socket.io server and tracks live sockets by their
// connection id. It is also the Broadcaster the game package emits through.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track connection id -> socket
	UserConnections map[string]*socket.Socket
	mutex           sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		UserConnections: make(map[string]*socket.Socket),
	}
}

func (s *SocketServer) AddConnection(connID string, socket *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UserConnections[connID] = socket
}

func (s *SocketServer) RemoveConnection(connID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.UserConnections, connID)
}

func (s *SocketServer) GetConnection(connID string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	socket, exists := s.UserConnections[connID]
	return socket, exists
}

// ToRoom broadcasts an event to every socket in a room.
func (s *SocketServer) ToRoom(code string, event string, data interface{}) {
	if data == nil {
		s.Sio_server.To(socket.Room(code)).Emit(event)
		return
	}
	s.Sio_server.To(socket.Room(code)).Emit(event, data)
}

// ToConn unicasts an event via the per-socket room every connection is a
// member of.
func (s *SocketServer) ToConn(connID string, event string, data interface{}) {
	if data == nil {
		s.Sio_server.To(socket.Room(connID)).Emit(event)
		return
	}
	s.Sio_server.To(socket.Room(connID)).Emit(event, data)
}
