package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sockroom/sockroom-server/internal/config"
	"github.com/sockroom/sockroom-server/internal/core"
)

// NewServer builds the HTTP server: health check, read-only room API, and
// the WebSocket endpoint.
func NewServer(ctrl *core.Controller, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/health", healthHandler)

	rooms := NewRoomHandlers(ctrl.Directory(), logger)
	api := router.Group("/api")
	{
		api.GET("/rooms", rooms.ListRooms)
		api.GET("/rooms/:name/members", rooms.RoomMembers)
	}

	router.GET("/ws", gin.WrapH(NewWSHandler(ctrl, cfg.AllowedOrigins, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
