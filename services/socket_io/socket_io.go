package socket_io

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Parola/services/game"
	"Parola/services/socket_io/handlers"
	socketio_types "Parola/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start configures the socket.io server, registers the per-event handlers on
// every new connection and mounts the transport endpoints on the gin router.
func (sio *MySocketServer) Start(router *gin.Engine, reg *game.Registry, words *game.WordSource) {
	log.DEBUG = os.Getenv("SOCKET_DEBUG") == "true"
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	sio.UserConnections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)
		connID := string(client.Id())

		(*socketio_types.SocketServer)(sio).AddConnection(connID, client)
		fmt.Println("New connection:", connID)

		// Room lifecycle
		client.On("createGame", handlers.HandleCreateGame(reg, client))
		client.On("joinGame", handlers.HandleJoinGame(reg, client))
		client.On("startGame", handlers.HandleStartGame(reg, client))
		client.On("leaveRoom", handlers.HandleLeaveRoom(reg, client))
		client.On("assignRole", handlers.HandleAssignRole(reg, client))

		// Round flow
		client.On("chooseCustomWord", handlers.HandleChooseCustomWord(reg, client))
		client.On("chooseRandomWord", handlers.HandleChooseRandomWord(reg, words, client))
		client.On("giveHint", handlers.HandleGiveHint(reg, client))
		client.On("extendTime", handlers.HandleExtendTime(reg, client))
		client.On("giveUp", handlers.HandleGiveUp(reg, client))

		// Chat
		client.On("sendChat", handlers.HandleSendChat(reg, client))
		client.On("explainerAnswer", handlers.HandleExplainerAnswer(reg, client))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(reg, client, (*socketio_types.SocketServer)(sio)))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	fmt.Println("Socket server started")
}
