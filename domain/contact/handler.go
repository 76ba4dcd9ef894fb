package contact

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/rahulchoudhary2961/MediLabsAI/domain/email"
	"github.com/rahulchoudhary2961/MediLabsAI/pkg/apperror"
	"github.com/rahulchoudhary2961/MediLabsAI/pkg/logger"
)

// Handler serves the htmx contact card and the JSON submission endpoint.
type Handler struct {
	registry *Registry
	sender   email.Sender
	log      *slog.Logger
}

// NewHandler creates a new contact handler
func NewHandler(registry *Registry, sender email.Sender, log *slog.Logger) *Handler {
	return &Handler{
		registry: registry,
		sender:   sender,
		log:      log.With(logger.Scope("contact.handler")),
	}
}

// SubmitResponse is the JSON body of a delivered /api/contact request.
type SubmitResponse struct {
	Status string `json:"status"`
}

func render(c echo.Context, code int, node g.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return node.Render(c.Response())
}

func renderController(c echo.Context, code int, ctrl *Controller) error {
	status, fields := ctrl.Snapshot()
	return render(c, code, Card(ctrl.ID(), status, fields))
}

func (h *Handler) controller(c echo.Context) (*Controller, error) {
	id := c.Param("id")
	ctrl, err := h.registry.GetOrCreate(id)
	if err != nil {
		return nil, apperror.NewNotFound("contact form", id)
	}
	return ctrl, nil
}

// Card renders the current card, used by the submitting state to poll.
// GET /contact/:id
func (h *Handler) Card(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return err
	}
	return renderController(c, http.StatusOK, ctrl)
}

// SetField applies one edit.
// POST /contact/:id/field?name=<field>
func (h *Handler) SetField(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return err
	}

	raw := c.QueryParam("name")
	name, err := ParseFieldName(raw)
	if err != nil {
		return apperror.New(http.StatusBadRequest, "unknown_field", "Unknown contact field").
			WithDetails(map[string]any{"field": raw})
	}

	err = ctrl.SetField(name, c.Request().PostFormValue(string(name)))
	switch {
	case errors.Is(err, ErrFormLocked):
		return c.NoContent(http.StatusConflict)
	case err != nil:
		return apperror.NewInternal("failed to set field", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Submit applies the posted fields, submits and renders the resolved card.
// POST /contact/:id/submit
func (h *Handler) Submit(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return err
	}

	params, err := c.FormParams()
	if err != nil {
		return apperror.NewBadRequest("invalid form body").WithInternal(err)
	}
	var posted Fields
	for _, name := range AllFields {
		_ = posted.Set(name, params.Get(string(name)))
	}

	results, err := ctrl.Submit(c.Request().Context(), posted)
	switch {
	case errors.Is(err, ErrRequiredFieldsMissing):
		return renderController(c, http.StatusUnprocessableEntity, ctrl)
	case errors.Is(err, ErrSubmissionInProgress), errors.Is(err, ErrInvalidTransition):
		return renderController(c, http.StatusConflict, ctrl)
	case err != nil:
		return apperror.NewInternal("failed to submit contact form", err)
	}

	res, ok := Wait(c.Request().Context(), results)
	if !ok {
		h.log.Debug("visitor left before delivery resolved", slog.String("form_id", ctrl.ID()))
		return nil
	}
	return render(c, http.StatusOK, Card(ctrl.ID(), res.Status, res.Fields))
}

// Reset is the "Send another message" action.
// POST /contact/:id/reset
func (h *Handler) Reset(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return err
	}
	if err := ctrl.SendAnother(); err != nil {
		return renderController(c, http.StatusConflict, ctrl)
	}
	return renderController(c, http.StatusOK, ctrl)
}

// SubmitJSON is a one-shot submission for clients without the page.
// POST /api/contact
func (h *Handler) SubmitJSON(c echo.Context) error {
	var fields Fields
	if err := c.Bind(&fields); err != nil {
		return apperror.NewBadRequest("invalid JSON body").WithInternal(err)
	}

	// one-shot instance, never registered
	ctrl := NewController(uuid.NewString(), h.sender, h.log)

	results, err := ctrl.Submit(c.Request().Context(), fields)
	if err != nil {
		var missing *MissingFieldsError
		if errors.As(err, &missing) {
			names := make([]string, len(missing.Fields))
			for i, f := range missing.Fields {
				names[i] = string(f)
			}
			return apperror.ErrValidation.
				WithMessage("Required fields are missing").
				WithDetails(map[string]any{"missing": names})
		}
		return apperror.NewInternal("failed to submit contact form", err)
	}

	res, ok := Wait(c.Request().Context(), results)
	if !ok {
		return nil
	}
	if res.Status != StatusSuccess {
		return apperror.ErrDeliveryFailed
	}
	return c.JSON(http.StatusOK, SubmitResponse{Status: res.Status.String()})
}
