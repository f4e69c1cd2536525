package handlers

import (
	"errors"
	"log"

	"Parola/services/game"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleCreateGame creates a room (optionally under a player-supplied code)
// and joins the creator as its host.
func HandleCreateGame(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return guarded("createGame", func(args ...interface{}) {
		ack := ackOf(args)
		payload := payloadOf(args)
		connID := string(client.Id())

		room, err := reg.CreateRoom(connID, stringField(payload, "name"), stringField(payload, "customCode"))
		if err != nil {
			log.Printf("[CREATE-ERROR] %s: %v", connID, err)
			ackError(ack, err.Error())
			return
		}
		client.Join(socket.Room(room.Code()))
		ackSuccess(ack, gin.H{"code": room.Code()})
		room.SendPlayerList()
	})
}

// HandleJoinGame adds the connection to an existing room as its second
// player.
func HandleJoinGame(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return guarded("joinGame", func(args ...interface{}) {
		ack := ackOf(args)
		payload := payloadOf(args)
		connID := string(client.Id())

		room, err := reg.Join(stringField(payload, "code"), connID, stringField(payload, "name"))
		if err != nil {
			log.Printf("[JOIN-ERROR] %s: %v", connID, err)
			ackError(ack, err.Error())
			if errors.Is(err, game.ErrRoomNotFound) {
				client.Emit("noGameFound")
			}
			return
		}
		client.Join(socket.Room(room.Code()))
		ackSuccess(ack, gin.H{"code": room.Code()})
		room.SendPlayerList()
	})
}

// HandleStartGame begins the word-selection phase. Unauthorized or premature
// starts are silent no-ops; only missing roles surface an errorMessage.
func HandleStartGame(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return guarded("startGame", func(args ...interface{}) {
		room, ok := reg.FindByCode(stringField(payloadOf(args), "code"))
		if !ok {
			return
		}
		room.Start(string(client.Id()))
	})
}

// HandleLeaveRoom removes the player from the room voluntarily.
func HandleLeaveRoom(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return guarded("leaveRoom", func(args ...interface{}) {
		room, ok := reg.FindByCode(stringField(payloadOf(args), "code"))
		if !ok {
			return
		}
		room.Leave(string(client.Id()))
		client.Leave(socket.Room(room.Code()))
	})
}

// HandleAssignRole sets guesser/explainer on a named player. Host-only; the
// state machine silently drops unauthorized calls.
func HandleAssignRole(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return guarded("assignRole", func(args ...interface{}) {
		ack := ackOf(args)
		payload := payloadOf(args)
		room, ok := reg.FindByCode(stringField(payload, "code"))
		if !ok {
			return
		}
		if room.AssignRole(string(client.Id()), stringField(payload, "name"), game.Role(stringField(payload, "role"))) {
			ackSuccess(ack, nil)
		}
	})
}
