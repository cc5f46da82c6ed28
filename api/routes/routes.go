package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umkm-ai/finance-assistant/api/handlers"
	"github.com/umkm-ai/finance-assistant/api/middleware"
)

// maxUploadBytes caps attachment size at the transport boundary.
const maxUploadBytes = 50 * 1024 * 1024

// SetupRoutes wires all routes onto the engine.
func SetupRoutes(r *gin.Engine, h *handlers.Handlers, publicDir string) {
	r.Use(middleware.CORS())

	r.GET("/health", h.Chat.Health)

	api := r.Group("/api")
	api.Use(middleware.MaxBodySize(maxUploadBytes))
	{
		api.POST("/chat", h.Chat.Chat)
	}

	// Frontend assets, when bundled with the deployment. The file server
	// resolves "/" to index.html and serves the rest of the folder as-is.
	if publicDir != "" {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(publicDir))))
	}
}
