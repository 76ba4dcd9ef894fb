package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/rahulchoudhary2961/MediLabsAI/domain/email"
	"github.com/rahulchoudhary2961/MediLabsAI/pkg/logger"
	"github.com/rahulchoudhary2961/MediLabsAI/pkg/tracing"
)

// TemplateName is the local template used by providers that render on our side.
const TemplateName = email.ContactRequestTemplate

// Result is the outcome of one delivery attempt.
type Result struct {
	Status Status
	Fields Fields
}

// Controller owns one contact form instance: its field values and its
// submission status. All methods are safe for concurrent use.
type Controller struct {
	id     string
	sender email.Sender
	log    *slog.Logger
	now    func() time.Time

	mu         sync.Mutex
	fields     Fields
	status     Status
	lastActive time.Time
}

// NewController creates an idle controller with empty fields.
func NewController(id string, sender email.Sender, log *slog.Logger) *Controller {
	return newController(id, sender, log, time.Now)
}

func newController(id string, sender email.Sender, log *slog.Logger, now func() time.Time) *Controller {
	return &Controller{
		id:         id,
		sender:     sender,
		log:        log.With(logger.Scope("contact"), slog.String("form_id", id)),
		now:        now,
		status:     StatusIdle,
		lastActive: now(),
	}
}

// ID returns the form instance id rendered into the page.
func (c *Controller) ID() string {
	return c.id
}

// Status returns the current status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Fields returns a copy of the current field values.
func (c *Controller) Fields() Fields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// Snapshot returns status and fields read under one lock.
func (c *Controller) Snapshot() (Status, Fields) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status, c.fields
}

// SetField updates exactly one field; the status is not touched. Edits are
// accepted while idle or error. A late edit arriving while submitting or
// after success is rejected with ErrFormLocked.
func (c *Controller) SetField(name FieldName, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.status.editable() {
		return fmt.Errorf("%w: %s", ErrFormLocked, c.status)
	}
	if err := c.fields.Set(name, value); err != nil {
		return fmt.Errorf("%w: %q", err, name)
	}
	c.lastActive = c.now()
	return nil
}

// Submit replaces the fields with the submitted snapshot and starts one
// delivery of it.
//
// The snapshot is applied only when the transition to submitting is allowed,
// so a rejected submit leaves the store untouched. On success it moves the
// status to submitting before returning and issues exactly one Sender.Send on
// its own goroutine. The returned channel yields a single Result once the call
// resolves and is then closed. The delivery ignores cancellation of ctx; no
// timeout is added here.
func (c *Controller) Submit(ctx context.Context, fields Fields) (<-chan Result, error) {
	c.mu.Lock()

	next, err := transition(c.status, eventSubmit)
	if err != nil {
		status := c.status
		c.mu.Unlock()
		if status == StatusSubmitting {
			SubmissionsTotal.WithLabelValues(outcomeBusy).Inc()
			return nil, ErrSubmissionInProgress
		}
		return nil, fmt.Errorf("%w: submit from %s", err, status)
	}

	c.fields = fields
	c.lastActive = c.now()

	if missing := c.fields.MissingRequired(); len(missing) > 0 {
		c.mu.Unlock()
		SubmissionsTotal.WithLabelValues(outcomeBlocked).Inc()
		return nil, &MissingFieldsError{Fields: missing}
	}

	c.status = next
	payload := c.fields
	c.mu.Unlock()

	c.log.Info("contact submission started")

	results := make(chan Result, 1)
	go c.deliver(context.WithoutCancel(ctx), payload, results)

	return results, nil
}

func (c *Controller) deliver(ctx context.Context, payload Fields, results chan<- Result) {
	defer close(results)

	ctx, span := tracing.Start(ctx, "contact.deliver", attribute.String("contact.form_id", c.id))
	defer span.End()

	start := time.Now()
	res, err := c.send(ctx, email.SendOptions{
		ReplyTo:      payload.Email,
		ReplyToName:  payload.Name,
		Subject:      "New contact request from " + payload.Name,
		TemplateName: TemplateName,
		TemplateData: payload.params(),
	})
	elapsed := time.Since(start)
	DeliveryDuration.Observe(elapsed.Seconds())

	delivered := err == nil && res != nil && res.Success

	on, outcome := eventFailed, outcomeFailed
	if delivered {
		on, outcome = eventDelivered, outcomeDelivered
	}

	c.mu.Lock()
	next, terr := transition(c.status, on)
	c.status = next
	if terr == nil && delivered {
		c.fields.Reset()
	}
	c.lastActive = c.now()
	result := Result{Status: c.status, Fields: c.fields}
	c.mu.Unlock()

	SubmissionsTotal.WithLabelValues(outcome).Inc()

	if terr != nil {
		// only Submit moves into submitting, and only deliver moves out of it
		c.log.Error("delivery resolved outside submitting", slog.String("status", next.String()))
	}

	if delivered {
		c.log.Info("contact submission delivered",
			slog.Duration("duration", elapsed),
			slog.String("message_id", res.MessageID))
	} else {
		detail := failureDetail(res, err)
		span.SetStatus(codes.Error, detail)
		c.log.Error("contact submission failed",
			slog.Duration("duration", elapsed),
			slog.String("detail", detail))
	}

	results <- result
}

// send turns a panicking sender into a failed delivery so the form never
// stays submitting.
func (c *Controller) send(ctx context.Context, opts email.SendOptions) (res *email.SendResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("sender panic: %v", r)
		}
	}()
	return c.sender.Send(ctx, opts)
}

func failureDetail(res *email.SendResult, err error) string {
	switch {
	case err != nil:
		return err.Error()
	case res == nil:
		return "sender returned no result"
	case res.Error != "":
		return res.Error
	}
	return "sender reported failure"
}

// SendAnother returns a successful form to idle. Any other status is rejected.
func (c *Controller) SendAnother() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := transition(c.status, eventSendAnother)
	if err != nil {
		return fmt.Errorf("%w: send another from %s", err, c.status)
	}
	c.status = next
	c.lastActive = c.now()
	return nil
}

// expired reports whether the instance may be evicted. A submitting
// instance never expires so its outcome is not lost.
func (c *Controller) expired(now time.Time, ttl time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status != StatusSubmitting && now.Sub(c.lastActive) > ttl
}

// MissingFieldsError is returned by Submit when required fields are empty.
type MissingFieldsError struct {
	Fields []FieldName
}

func (e *MissingFieldsError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return fmt.Sprintf("%s: %s", ErrRequiredFieldsMissing, strings.Join(names, ", "))
}

// Is matches ErrRequiredFieldsMissing.
func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrRequiredFieldsMissing
}

// Wait blocks until the delivery resolves or ctx ends. ok is false if ctx
// ended first; the delivery still completes in the background.
func Wait(ctx context.Context, results <-chan Result) (res Result, ok bool) {
	select {
	case res, ok = <-results:
		return res, ok
	case <-ctx.Done():
		return Result{}, false
	}
}
