package email

import "context"

// Sender is the interface for sending emails. Provider failures are reported
// as a SendResult with Success false; a non-nil error means the request
// could not be built at all.
type Sender interface {
	Send(ctx context.Context, opts SendOptions) (*SendResult, error)
}

// SendOptions contains options for sending an email
type SendOptions struct {
	// To defaults to the configured inbox when empty
	To     string
	ToName string

	ReplyTo     string
	ReplyToName string
	Subject     string

	// TemplateName selects the local template used when HTML is empty.
	// EmailJS renders on its side and only receives TemplateData.
	TemplateName string
	TemplateData TemplateContext

	HTML string
	Text string
}

// SendResult contains the result of sending an email
type SendResult struct {
	Success   bool
	MessageID string
	Error     string
}

func failed(msg string) *SendResult {
	return &SendResult{Success: false, Error: msg}
}
