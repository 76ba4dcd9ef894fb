package contact

import "errors"

// Status is the submission state of one contact form instance.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// editable reports whether visitor edits may change the fields.
func (s Status) editable() bool {
	return s == StatusIdle || s == StatusError
}

// event drives the status machine.
type event int

const (
	eventSubmit event = iota
	eventDelivered
	eventFailed
	eventSendAnother
)

func (e event) String() string {
	switch e {
	case eventSubmit:
		return "submit"
	case eventDelivered:
		return "delivered"
	case eventFailed:
		return "failed"
	case eventSendAnother:
		return "sendAnother"
	}
	return "unknown"
}

var (
	ErrUnknownField          = errors.New("contact: unknown field")
	ErrRequiredFieldsMissing = errors.New("contact: required fields missing")
	ErrSubmissionInProgress  = errors.New("contact: submission in progress")
	ErrInvalidTransition     = errors.New("contact: invalid transition")
	ErrFormLocked            = errors.New("contact: form is not editable")
)

type transitionKey struct {
	from Status
	on   event
}

// transitions lists every allowed move; any pair not present is rejected.
var transitions = map[transitionKey]Status{
	{StatusIdle, eventSubmit}:          StatusSubmitting,
	{StatusError, eventSubmit}:         StatusSubmitting,
	{StatusSubmitting, eventDelivered}: StatusSuccess,
	{StatusSubmitting, eventFailed}:    StatusError,
	{StatusSuccess, eventSendAnother}:  StatusIdle,
}

// transition returns the next status, or ErrInvalidTransition with from unchanged.
func transition(from Status, on event) (Status, error) {
	if to, ok := transitions[transitionKey{from, on}]; ok {
		return to, nil
	}
	return from, ErrInvalidTransition
}
