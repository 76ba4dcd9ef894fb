package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	Email   EmailConfig
	Contact ContactConfig
	Site    SiteConfig
	Otel    OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"90s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Email providers accepted by EMAIL_PROVIDER.
const (
	ProviderEmailJS = "emailjs"
	ProviderMailgun = "mailgun"
	ProviderNoop    = "noop"
)

// EmailConfig holds the outbound delivery settings for contact submissions
type EmailConfig struct {
	// Provider selects the delivery collaborator: emailjs, mailgun or noop
	Provider string `env:"EMAIL_PROVIDER" envDefault:"emailjs"`

	// EmailJS identifiers. They are deliberately not validated at startup:
	// a missing value makes every submission fail at delivery time.
	EmailJSServiceID  string `env:"EMAILJS_SERVICE_ID" envDefault:""`
	EmailJSTemplateID string `env:"EMAILJS_TEMPLATE_ID" envDefault:""`
	EmailJSPublicKey  string `env:"EMAILJS_PUBLIC_KEY" envDefault:""`
	// EmailJSPrivateKey is sent as accessToken when the account enforces strict mode
	EmailJSPrivateKey string `env:"EMAILJS_PRIVATE_KEY" envDefault:""`
	EmailJSAPIURL     string `env:"EMAILJS_API_URL" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`

	// MailgunDomain is the Mailgun domain
	MailgunDomain string `env:"MAILGUN_DOMAIN" envDefault:""`
	// MailgunAPIKey is the Mailgun API key
	MailgunAPIKey string `env:"MAILGUN_API_KEY" envDefault:""`
	// MailgunAPIBase overrides the API base (e.g. the EU region)
	MailgunAPIBase string `env:"MAILGUN_API_BASE" envDefault:""`
	// FromEmail is the default from email address
	FromEmail string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@medilabsai.health"`
	// FromName is the default from name
	FromName string `env:"EMAIL_FROM_NAME" envDefault:"MediLabsAI Website"`
	// Inbox receives contact requests when delivering through Mailgun
	Inbox string `env:"CONTACT_INBOX" envDefault:"medilabsai.health@gmail.com"`

	// SendTimeout bounds a single provider call
	SendTimeout time.Duration `env:"EMAIL_SEND_TIMEOUT" envDefault:"30s"`
	// TemplateDir overrides the embedded email templates
	TemplateDir string `env:"EMAIL_TEMPLATE_DIR" envDefault:""`
}

// ContactConfig holds settings for contact form instances
type ContactConfig struct {
	// FormTTL is how long an untouched form instance is kept in memory
	FormTTL time.Duration `env:"CONTACT_FORM_TTL" envDefault:"2h"`
	// SweepSchedule is the cron expression for evicting expired form instances
	SweepSchedule string `env:"CONTACT_SWEEP_SCHEDULE" envDefault:"@every 10m"`
}

// SiteConfig holds landing page settings
type SiteConfig struct {
	BaseURL string `env:"SITE_BASE_URL" envDefault:"http://localhost:4002"`
	Title   string `env:"SITE_TITLE" envDefault:"MediLabsAI - Precision AI for Modern Clinical Excellence"`
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// IsMailgunConfigured returns true if Mailgun credentials are present
func (e *EmailConfig) IsMailgunConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// IsEmailJSConfigured returns true if all three public EmailJS identifiers are set
func (e *EmailConfig) IsEmailJSConfigured() bool {
	return e.EmailJSServiceID != "" && e.EmailJSTemplateID != "" && e.EmailJSPublicKey != ""
}

// Load parses configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("email_provider", cfg.Email.Provider),
		slog.Duration("contact_form_ttl", cfg.Contact.FormTTL),
	)

	return cfg, nil
}
