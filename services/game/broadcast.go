package game

// Broadcaster is the outbound side of the room-scoped pub/sub channel. The
// socket.io layer implements it; tests substitute a recorder. ToConn targets
// the per-connection room every socket is a member of.
type Broadcaster interface {
	ToRoom(code string, event string, data interface{})
	ToConn(connID string, event string, data interface{})
}
