package site

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rahulchoudhary2961/MediLabsAI/domain/contact"
	"github.com/rahulchoudhary2961/MediLabsAI/internal/config"
	"github.com/rahulchoudhary2961/MediLabsAI/pkg/logger"
)

// Handler serves the landing page.
type Handler struct {
	content *SiteContent
	page    PageConfig
	log     *slog.Logger
}

// NewHandler creates a new site handler
func NewHandler(content *SiteContent, cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		content: content,
		page: PageConfig{
			Title:   cfg.Site.Title,
			BaseURL: cfg.Site.BaseURL,
		},
		log: log.With(logger.Scope("site.handler")),
	}
}

// Index renders the page with an idle contact card under a fresh form id.
// The instance itself is created by the contact handler on first use.
// GET /
func (h *Handler) Index(c echo.Context) error {
	page := Page(h.content, h.page, contact.Card(uuid.NewString(), contact.StatusIdle, contact.Fields{}))

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	c.Response().WriteHeader(http.StatusOK)
	if err := page.Render(c.Response()); err != nil {
		h.log.Error("failed to render page", logger.Error(err))
		return err
	}
	return nil
}
