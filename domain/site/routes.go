package site

import (
	"embed"
	"io/fs"

	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFS embed.FS

// RegisterRoutes registers the landing page and its static assets
func RegisterRoutes(e *echo.Echo, h *Handler) error {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return err
	}
	e.StaticFS("/static", sub)
	e.GET("/", h.Index)
	return nil
}
