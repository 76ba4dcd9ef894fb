package contact

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers contact form routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/contact/:id")
	g.GET("", h.Card)
	g.POST("/field", h.SetField)
	g.POST("/submit", h.Submit)
	g.POST("/reset", h.Reset)

	e.POST("/api/contact", h.SubmitJSON)
}
