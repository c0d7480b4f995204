package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"complaintbox/internal/infrastructure/config"
	"complaintbox/internal/interfaces/http/handlers"
	"complaintbox/internal/interfaces/http/middleware"
	"complaintbox/internal/shared/constants"
	"complaintbox/internal/shared/logger"
)

// RouterDeps carries everything the router needs, already wired.
type RouterDeps struct {
	AuthHandler      *handlers.AuthHandler
	ComplaintHandler *handlers.ComplaintHandler
	DashboardHandler *handlers.DashboardHandler
	SessionGate      *middleware.SessionGate
	Config           *config.Config
	Logger           logger.Interface
}

// NewRouter assembles the HTTP surface: the anonymous submission
// endpoint, the auth endpoints, static attachment serving, and the
// gated dashboard websocket.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger(deps.Logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.Static("/uploads", deps.Config.Storage.UploadDir)

	api := router.Group("/api")
	{
		api.POST("/complaints", deps.ComplaintHandler.Submit)

		adminAPI := api.Group("/admin")
		{
			adminAPI.POST("/login", deps.AuthHandler.Login)
			adminAPI.POST("/logout", deps.AuthHandler.Logout)
		}
	}

	admin := router.Group(constants.DashboardRoute)
	admin.Use(deps.SessionGate.RequireSession())
	{
		admin.GET("", deps.DashboardHandler.Shell)
		admin.GET("/ws", deps.DashboardHandler.Stream)
	}

	return router
}
