package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mailgun/mailgun-go/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/rahulchoudhary2961/MediLabsAI/pkg/logger"
	"github.com/rahulchoudhary2961/MediLabsAI/pkg/tracing"
)

// DefaultLayout wraps every locally rendered template.
const DefaultLayout = "default"

// MailgunSender renders the contact template locally and sends it through
// the Mailgun API.
type MailgunSender struct {
	cfg       *Config
	log       *slog.Logger
	client    *mailgun.MailgunImpl
	templates *TemplateService
}

// NewMailgunSender creates a new Mailgun email sender.
func NewMailgunSender(cfg *Config, templates *TemplateService, log *slog.Logger) *MailgunSender {
	client := mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey)
	if cfg.MailgunAPIBase != "" {
		client.SetAPIBase(cfg.MailgunAPIBase)
	}

	return &MailgunSender{
		cfg:       cfg,
		log:       log.With(logger.Scope("email.mailgun")),
		client:    client,
		templates: templates,
	}
}

// Send sends an email via Mailgun. When opts.HTML is empty the body is
// rendered from opts.TemplateName.
func (s *MailgunSender) Send(ctx context.Context, opts SendOptions) (*SendResult, error) {
	ctx, span := tracing.Start(ctx, "email.mailgun.send",
		attribute.String("mailgun.domain", s.cfg.MailgunDomain),
		attribute.String("email.template", opts.TemplateName),
	)
	defer span.End()

	if err := s.validate(); err != nil {
		s.log.Error("email configuration invalid", logger.Error(err))
		return failed(err.Error()), nil
	}

	html, text := opts.HTML, opts.Text
	if html == "" && opts.TemplateName != "" {
		rendered, err := s.templates.Render(opts.TemplateName, opts.TemplateData, DefaultLayout)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", opts.TemplateName, err)
		}
		html = rendered.HTML
		if text == "" {
			text = rendered.Text
		}
	}

	to := opts.To
	if to == "" {
		to = s.cfg.Inbox
	}
	if opts.ToName != "" {
		to = fmt.Sprintf("%s <%s>", opts.ToName, to)
	}

	from := fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)

	message := s.client.NewMessage(from, opts.Subject, text, to)
	if html != "" {
		message.SetHtml(html)
	}
	if opts.ReplyTo != "" {
		replyTo := opts.ReplyTo
		if opts.ReplyToName != "" {
			replyTo = fmt.Sprintf("%s <%s>", opts.ReplyToName, opts.ReplyTo)
		}
		message.AddHeader("Reply-To", replyTo)
	}

	s.log.Debug("sending email",
		slog.String("to", to),
		slog.String("subject", opts.Subject))

	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.timeout())
	defer cancel()

	_, messageID, err := s.client.Send(sendCtx, message)
	if err != nil {
		s.log.Error("failed to send email",
			slog.String("to", to),
			logger.Error(err))
		span.RecordError(err)
		return failed(err.Error()), nil
	}

	s.log.Info("email sent successfully",
		slog.String("to", to),
		slog.String("message_id", messageID))

	return &SendResult{
		Success:   true,
		MessageID: messageID,
	}, nil
}

// validate checks that the configuration is valid
func (s *MailgunSender) validate() error {
	if s.cfg.MailgunDomain == "" {
		return fmt.Errorf("MAILGUN_DOMAIN is required")
	}
	if s.cfg.MailgunAPIKey == "" {
		return fmt.Errorf("MAILGUN_API_KEY is required")
	}
	if s.cfg.FromEmail == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS is required")
	}
	if s.cfg.FromName == "" {
		return fmt.Errorf("EMAIL_FROM_NAME is required")
	}
	if s.cfg.Inbox == "" {
		return fmt.Errorf("CONTACT_INBOX is required")
	}
	return nil
}
