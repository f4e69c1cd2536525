package handlers

import (
	"Parola/services/game"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandleSendChat broadcasts a chat message to the sender's room. The state
// machine resolves a winning guess as part of the same operation.
func HandleSendChat(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return guarded("sendChat", func(args ...interface{}) {
		ack := ackOf(args)
		connID := string(client.Id())
		room, ok := reg.FindByConnection(connID)
		if !ok {
			return
		}
		if room.SubmitChat(connID, stringField(payloadOf(args), "text")) {
			ackSuccess(ack, nil)
		}
	})
}

// HandleExplainerAnswer posts one of the yes/no/maybe/idk buttons to the
// chat.
func HandleExplainerAnswer(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return guarded("explainerAnswer", func(args ...interface{}) {
		ack := ackOf(args)
		connID := string(client.Id())
		room, ok := reg.FindByConnection(connID)
		if !ok {
			return
		}
		if room.ExplainerAnswer(connID, stringField(payloadOf(args), "answer")) {
			ackSuccess(ack, nil)
		}
	})
}
