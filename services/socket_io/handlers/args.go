package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// payloadOf returns the first argument as an object payload; socket.io
// decodes JSON objects into map[string]interface{}.
func payloadOf(args []interface{}) map[string]interface{} {
	if len(args) == 0 {
		return nil
	}
	m, _ := args[0].(map[string]interface{})
	return m
}

func stringField(payload map[string]interface{}, key string) string {
	if payload == nil {
		return ""
	}
	s, _ := payload[key].(string)
	return s
}

// ackOf extracts the acknowledgment callback when the client requested one.
func ackOf(args []interface{}) socket.Ack {
	if len(args) == 0 {
		return nil
	}
	ack, _ := args[len(args)-1].(socket.Ack)
	return ack
}

func ackSuccess(ack socket.Ack, extra gin.H) {
	if ack == nil {
		return
	}
	payload := gin.H{"success": true}
	for k, v := range extra {
		payload[k] = v
	}
	ack([]interface{}{payload}, nil)
}

func ackError(ack socket.Ack, msg string) {
	if ack == nil {
		return
	}
	ack([]interface{}{gin.H{"error": msg}}, nil)
}

// guarded isolates handler faults so one malformed event can never take down
// the dispatch loop or other rooms' sessions.
func guarded(name string, fn func(args ...interface{})) func(args ...interface{}) {
	return func(args ...interface{}) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[SOCKET-PANIC] %s: %v", name, rec)
			}
		}()
		fn(args...)
	}
}
