package assistantrun

import (
	"github.com/labstack/echo/v4"

	"github.com/vander-supa3/academia-nutricional/pkg/auth"
)

// RegisterRoutes registers assistant run routes with the Echo router
func RegisterRoutes(e *echo.Echo, h *Handler, authMiddleware *auth.Middleware) {
	g := e.Group("/api/ai")
	g.Use(authMiddleware.RequireAuth())

	g.POST("/run", h.Run)
}
