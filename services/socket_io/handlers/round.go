package handlers

import (
	"Parola/services/game"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleChooseCustomWord lets the explainer submit their own secret word.
func HandleChooseCustomWord(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return guarded("chooseCustomWord", func(args ...interface{}) {
		ack := ackOf(args)
		connID := string(client.Id())
		room, ok := reg.FindByConnection(connID)
		if !ok {
			return
		}
		handled, err := room.ChooseCustomWord(connID, stringField(payloadOf(args), "word"))
		if err != nil {
			ackError(ack, err.Error())
			return
		}
		if handled {
			ackSuccess(ack, gin.H{"difficulty": game.DifficultyCustom})
		}
	})
}

// HandleChooseRandomWord draws a word from the weighted pools.
func HandleChooseRandomWord(reg *game.Registry, words *game.WordSource, client *socket.Socket) func(args ...interface{}) {
	return guarded("chooseRandomWord", func(args ...interface{}) {
		ack := ackOf(args)
		connID := string(client.Id())
		room, ok := reg.FindByConnection(connID)
		if !ok {
			return
		}
		difficulty, handled, err := room.ChooseRandomWord(connID, words)
		if err != nil {
			ackError(ack, err.Error())
			return
		}
		if handled {
			ackSuccess(ack, gin.H{"difficulty": difficulty})
		}
	})
}

// HandleGiveHint reveals one random letter, once per round.
func HandleGiveHint(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return guarded("giveHint", func(args ...interface{}) {
		ack := ackOf(args)
		connID := string(client.Id())
		room, ok := reg.FindByConnection(connID)
		if !ok {
			return
		}
		if room.GiveHint(connID) {
			ackSuccess(ack, nil)
		}
	})
}

// HandleExtendTime adds five minutes to the running countdown.
func HandleExtendTime(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return guarded("extendTime", func(args ...interface{}) {
		ack := ackOf(args)
		connID := string(client.Id())
		room, ok := reg.FindByConnection(connID)
		if !ok {
			return
		}
		if seconds, extended := room.ExtendTime(connID); extended {
			ackSuccess(ack, gin.H{"seconds": seconds})
		}
	})
}

// HandleGiveUp aborts the round on behalf of any participant.
func HandleGiveUp(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return guarded("giveUp", func(args ...interface{}) {
		ack := ackOf(args)
		connID := string(client.Id())
		room, ok := reg.FindByConnection(connID)
		if !ok {
			return
		}
		if room.GiveUp(connID, stringField(payloadOf(args), "reason")) {
			ackSuccess(ack, nil)
		}
	})
}
