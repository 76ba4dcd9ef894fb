package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/rahulchoudhary2961/MediLabsAI/pkg/logger"
	"github.com/rahulchoudhary2961/MediLabsAI/pkg/tracing"
)

// maxErrorBody caps how much of an EmailJS error response is kept.
const maxErrorBody = 1 << 10

// EmailJSSender delivers template parameters to the EmailJS REST API.
// Rendering and the recipient list live in the EmailJS template itself.
type EmailJSSender struct {
	cfg        *Config
	log        *slog.Logger
	httpClient *http.Client
}

// emailJSRequest is the body of POST /api/v1.0/email/send
type emailJSRequest struct {
	ServiceID      string          `json:"service_id"`
	TemplateID     string          `json:"template_id"`
	UserID         string          `json:"user_id"`
	AccessToken    string          `json:"accessToken,omitempty"`
	TemplateParams TemplateContext `json:"template_params"`
}

// NewEmailJSSender creates an EmailJS sender. Missing identifiers are not
// rejected here; Send reports them as a failed delivery.
func NewEmailJSSender(cfg *Config, log *slog.Logger) *EmailJSSender {
	return &EmailJSSender{
		cfg: cfg,
		log: log.With(logger.Scope("email.emailjs")),
		httpClient: &http.Client{
			Timeout:   cfg.timeout(),
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Send posts opts.TemplateData as template_params.
func (s *EmailJSSender) Send(ctx context.Context, opts SendOptions) (*SendResult, error) {
	ctx, span := tracing.Start(ctx, "email.emailjs.send",
		attribute.String("emailjs.service_id", s.cfg.EmailJSServiceID),
		attribute.String("emailjs.template_id", s.cfg.EmailJSTemplateID),
	)
	defer span.End()

	if err := s.validate(); err != nil {
		s.log.Error("emailjs configuration invalid", logger.Error(err))
		return failed(err.Error()), nil
	}

	params := opts.TemplateData
	if params == nil {
		params = TemplateContext{}
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:      s.cfg.EmailJSServiceID,
		TemplateID:     s.cfg.EmailJSTemplateID,
		UserID:         s.cfg.EmailJSPublicKey,
		AccessToken:    s.cfg.EmailJSPrivateKey,
		TemplateParams: params,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode emailjs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.EmailJSAPIURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Error("emailjs request failed", logger.Error(err))
		span.RecordError(err)
		return failed(fmt.Sprintf("emailjs request failed: %v", err)), nil
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := strings.TrimSpace(string(respBody))
		s.log.Error("emailjs rejected the message",
			slog.Int("status", resp.StatusCode),
			slog.String("detail", detail))
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
		return failed(fmt.Sprintf("emailjs: %d %s", resp.StatusCode, detail)), nil
	}

	s.log.Info("email accepted by emailjs", slog.Int("status", resp.StatusCode))

	return &SendResult{Success: true}, nil
}

// validate checks that the configuration is valid
func (s *EmailJSSender) validate() error {
	if s.cfg.EmailJSServiceID == "" {
		return fmt.Errorf("EMAILJS_SERVICE_ID is required")
	}
	if s.cfg.EmailJSTemplateID == "" {
		return fmt.Errorf("EMAILJS_TEMPLATE_ID is required")
	}
	if s.cfg.EmailJSPublicKey == "" {
		return fmt.Errorf("EMAILJS_PUBLIC_KEY is required")
	}
	if s.cfg.EmailJSAPIURL == "" {
		return fmt.Errorf("EMAILJS_API_URL is required")
	}
	return nil
}
