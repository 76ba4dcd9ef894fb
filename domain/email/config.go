package email

import (
	"time"

	"github.com/rahulchoudhary2961/MediLabsAI/internal/config"
)

// Config contains email service configuration
type Config struct {
	// Provider is one of config.ProviderEmailJS, config.ProviderMailgun, config.ProviderNoop
	Provider string

	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string
	EmailJSPrivateKey string
	EmailJSAPIURL     string

	MailgunDomain  string
	MailgunAPIKey  string
	MailgunAPIBase string

	// FromEmail is the default from email address
	FromEmail string
	// FromName is the default from name
	FromName string
	// Inbox is the default recipient of contact requests
	Inbox string

	SendTimeout time.Duration
	TemplateDir string
}

// NewConfig creates email configuration from the app config
func NewConfig(cfg *config.Config) *Config {
	return &Config{
		Provider:          cfg.Email.Provider,
		EmailJSServiceID:  cfg.Email.EmailJSServiceID,
		EmailJSTemplateID: cfg.Email.EmailJSTemplateID,
		EmailJSPublicKey:  cfg.Email.EmailJSPublicKey,
		EmailJSPrivateKey: cfg.Email.EmailJSPrivateKey,
		EmailJSAPIURL:     cfg.Email.EmailJSAPIURL,
		MailgunDomain:     cfg.Email.MailgunDomain,
		MailgunAPIKey:     cfg.Email.MailgunAPIKey,
		MailgunAPIBase:    cfg.Email.MailgunAPIBase,
		FromEmail:         cfg.Email.FromEmail,
		FromName:          cfg.Email.FromName,
		Inbox:             cfg.Email.Inbox,
		SendTimeout:       cfg.Email.SendTimeout,
		TemplateDir:       cfg.Email.TemplateDir,
	}
}

// timeout returns the per-call timeout, falling back to 30s
func (c *Config) timeout() time.Duration {
	if c.SendTimeout <= 0 {
		return 30 * time.Second
	}
	return c.SendTimeout
}

// IsConfigured returns true if the selected provider has its credentials
func (c *Config) IsConfigured() bool {
	creds := config.EmailConfig{
		EmailJSServiceID:  c.EmailJSServiceID,
		EmailJSTemplateID: c.EmailJSTemplateID,
		EmailJSPublicKey:  c.EmailJSPublicKey,
		MailgunDomain:     c.MailgunDomain,
		MailgunAPIKey:     c.MailgunAPIKey,
	}

	switch c.Provider {
	case config.ProviderMailgun:
		return creds.IsMailgunConfigured()
	case config.ProviderNoop:
		return true
	default:
		return creds.IsEmailJSConfigured()
	}
}
