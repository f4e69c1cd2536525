package main

import (
	"log"
	"os"

	game_constants "Parola/constants/game"
	"Parola/middleware"
	"Parola/routes"
	"Parola/services/game"
	"Parola/services/socket_io"
	socketio_types "Parola/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	wordlistDir := os.Getenv("WORDLIST_DIR")
	if wordlistDir == "" {
		wordlistDir = "shared"
	}
	words := game.LoadWordSource(wordlistDir)

	sioServer := socketio_types.NewSocketServer()
	registry := game.NewRegistry(sioServer)

	r := gin.Default()

	middleware.SetUpMiddleware(r)
	routes.SetupRoutes(r, "./public")

	sio := (*socket_io.MySocketServer)(sioServer)
	sio.Start(r, registry, words)

	// Runs for the lifetime of the process.
	game.StartPresenceSweeper(registry, game_constants.PresenceInterval)

	// Configure port
	port := os.Getenv("PORT")
	if port == "" && os.Getenv("USE_HTTPS") == "true" {
		port = "443"
	} else if port == "" {
		port = "3000"
	}

	if os.Getenv("USE_HTTPS") == "true" {
		certFile := os.Getenv("TLS_CERT_FILE")
		keyFile := os.Getenv("TLS_KEY_FILE")

		if err := r.RunTLS(":"+port, certFile, keyFile); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	} else {
		if err := r.Run(":" + port); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}
}
