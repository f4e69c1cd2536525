package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the HTTP surface: a health endpoint and the static
// frontend. The socket.io endpoints are mounted by the socket server itself.
func SetupRoutes(router *gin.Engine, publicDir string) {
	router.GET("/ping", Ping)

	// Frontend assets are opaque to the server; a missing directory just 404s.
	router.NoRoute(gin.WrapH(http.FileServer(http.Dir(publicDir))))
}

// Ping is a trivial liveness probe.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
