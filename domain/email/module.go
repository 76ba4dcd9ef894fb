package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	"github.com/rahulchoudhary2961/MediLabsAI/internal/config"
	"github.com/rahulchoudhary2961/MediLabsAI/pkg/logger"
)

// Module provides the configured Sender
var Module = fx.Module("email",
	fx.Provide(
		NewConfig,
		NewTemplateServiceFromConfig,
		NewSender,
	),
)

// NewSender picks the sender named by EMAIL_PROVIDER. An unconfigured
// provider is still returned so a submission fails visibly instead of
// silently succeeding. Mailgun renders locally, so a template set without
// the contact request template is a startup error.
func NewSender(log *slog.Logger, cfg *Config, templates *TemplateService) (Sender, error) {
	if !cfg.IsConfigured() {
		log.Warn("email provider is not fully configured; submissions will fail",
			slog.String("provider", cfg.Provider))
	}

	switch cfg.Provider {
	case config.ProviderNoop:
		log.Info("using no-op email sender")
		return NewNoopSender(log), nil
	case config.ProviderMailgun:
		if !templates.HasTemplate(ContactRequestTemplate) {
			return nil, fmt.Errorf("email template %q not found (available: %s)",
				ContactRequestTemplate, strings.Join(templates.ListTemplates(), ", "))
		}
		log.Info("using Mailgun sender",
			slog.String("domain", cfg.MailgunDomain),
			slog.String("from", cfg.FromEmail))
		return NewMailgunSender(cfg, templates, log), nil
	default:
		log.Info("using EmailJS sender",
			slog.String("service_id", cfg.EmailJSServiceID),
			slog.String("template_id", cfg.EmailJSTemplateID))
		return NewEmailJSSender(cfg, log), nil
	}
}

// noOpSender logs and reports success; for local development
type noOpSender struct {
	log *slog.Logger
}

// NewNoopSender returns a Sender that never contacts a provider.
func NewNoopSender(log *slog.Logger) Sender {
	return &noOpSender{log: log.With(logger.Scope("email.noop"))}
}

func (s *noOpSender) Send(ctx context.Context, opts SendOptions) (*SendResult, error) {
	s.log.Info("email send (no-op)",
		slog.String("to", opts.To),
		slog.String("subject", opts.Subject),
		slog.Int("params", len(opts.TemplateData)))

	return &SendResult{
		Success:   true,
		MessageID: "noop",
	}, nil
}
