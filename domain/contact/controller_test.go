package contact

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rahulchoudhary2961/MediLabsAI/domain/email"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSender records calls and answers with a scripted outcome. When gate is
// set, Send blocks until it is closed.
type fakeSender struct {
	mu     sync.Mutex
	calls  []email.SendOptions
	ctxErr []error

	result *email.SendResult
	err    error
	panics bool
	gate   chan struct{}
}

func (f *fakeSender) Send(ctx context.Context, opts email.SendOptions) (*email.SendResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, opts)
	f.ctxErr = append(f.ctxErr, ctx.Err())
	gate, result, err, panics := f.gate, f.result, f.err, f.panics
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if panics {
		panic("provider exploded")
	}
	return result, err
}

func (f *fakeSender) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeSender) set(result *email.SendResult, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.result, f.err = result, err
}

func delivered() *fakeSender {
	return &fakeSender{result: &email.SendResult{Success: true, MessageID: "m-1"}}
}

var asha = Fields{Name: "Asha", Email: "a@x.com", Message: "Need a demo"}

func fillAsha(t *testing.T, c *Controller) {
	t.Helper()
	require.NoError(t, c.SetField(FieldNameName, "Asha"))
	require.NoError(t, c.SetField(FieldNameEmail, "a@x.com"))
	require.NoError(t, c.SetField(FieldNameMessage, "Need a demo"))
}

func submitAndWait(t *testing.T, c *Controller) Result {
	t.Helper()
	results, err := c.Submit(context.Background(), c.Fields())
	require.NoError(t, err)

	select {
	case res, ok := <-results:
		require.True(t, ok, "result channel closed without a result")
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("delivery did not resolve")
	}
	return Result{}
}

func TestController_NewIsIdleAndEmpty(t *testing.T) {
	c := NewController("f1", delivered(), testLogger())

	assert.Equal(t, "f1", c.ID())
	assert.Equal(t, StatusIdle, c.Status())
	assert.Equal(t, Fields{}, c.Fields())
}

func TestController_SetFieldChangesOnlyThatField(t *testing.T) {
	c := NewController("f1", delivered(), testLogger())
	fillAsha(t, c)

	require.NoError(t, c.SetField(FieldNameOrganization, "City Hospital"))

	want := Fields{Name: "Asha", Email: "a@x.com", Organization: "City Hospital", Message: "Need a demo"}
	if diff := cmp.Diff(want, c.Fields()); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, StatusIdle, c.Status())

	err := c.SetField(FieldName("fax"), "123")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, want, c.Fields())
}

func TestController_SubmitDelivered(t *testing.T) {
	sender := delivered()
	c := NewController("f1", sender, testLogger())
	fillAsha(t, c)

	res := submitAndWait(t, c)

	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, Fields{}, res.Fields)
	assert.Equal(t, StatusSuccess, c.Status())
	assert.Equal(t, Fields{}, c.Fields())

	require.Equal(t, 1, sender.callCount())
	call := sender.calls[0]
	want := email.TemplateContext{
		"name":         "Asha",
		"email":        "a@x.com",
		"phone":        "",
		"organization": "",
		"message":      "Need a demo",
	}
	if diff := cmp.Diff(want, call.TemplateData); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "a@x.com", call.ReplyTo)
	assert.Equal(t, TemplateName, call.TemplateName)
}

func TestController_SubmitFailed(t *testing.T) {
	tests := []struct {
		name   string
		result *email.SendResult
		err    error
		panics bool
	}{
		{name: "provider rejects", result: &email.SendResult{Success: false, Error: "400 bad key"}},
		{name: "transport error", err: errors.New("connection refused")},
		{name: "nil result", result: nil},
		{name: "sender panics", panics: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{result: tt.result, err: tt.err, panics: tt.panics}
			c := NewController("f1", sender, testLogger())
			fillAsha(t, c)

			res := submitAndWait(t, c)

			assert.Equal(t, StatusError, res.Status)
			assert.Equal(t, Fields{Name: "Asha", Email: "a@x.com", Message: "Need a demo"}, res.Fields)
			assert.Equal(t, StatusError, c.Status())
			assert.Equal(t, 1, sender.callCount())
		})
	}
}

func TestController_GuardBlocksSubmission(t *testing.T) {
	sender := delivered()
	c := NewController("f1", sender, testLogger())
	require.NoError(t, c.SetField(FieldNameName, "Asha"))
	require.NoError(t, c.SetField(FieldNameEmail, "a@x.com"))

	results, err := c.Submit(context.Background(), c.Fields())

	assert.Nil(t, results)
	require.ErrorIs(t, err, ErrRequiredFieldsMissing)
	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []FieldName{FieldNameMessage}, missing.Fields)
	assert.Equal(t, "contact: required fields missing: message", err.Error())

	assert.Equal(t, StatusIdle, c.Status())
	assert.Equal(t, 0, sender.callCount())
}

func TestController_SubmitWhileSubmitting(t *testing.T) {
	sender := delivered()
	sender.gate = make(chan struct{})
	c := NewController("f1", sender, testLogger())
	fillAsha(t, c)

	results, err := c.Submit(context.Background(), c.Fields())
	require.NoError(t, err)
	assert.Equal(t, StatusSubmitting, c.Status())

	second, err := c.Submit(context.Background(), c.Fields())
	assert.Nil(t, second)
	assert.ErrorIs(t, err, ErrSubmissionInProgress)

	close(sender.gate)
	res := <-results
	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, 1, sender.callCount())

	_, open := <-results
	assert.False(t, open, "channel is closed after the single result")
}

func TestController_RetryFromError(t *testing.T) {
	sender := &fakeSender{result: &email.SendResult{Success: false}}
	c := NewController("f1", sender, testLogger())
	fillAsha(t, c)

	assert.Equal(t, StatusError, submitAndWait(t, c).Status)
	assert.Equal(t, StatusError, submitAndWait(t, c).Status)
	assert.Equal(t, 2, sender.callCount())

	sender.set(&email.SendResult{Success: true}, nil)
	res := submitAndWait(t, c)
	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, Fields{}, res.Fields)
	assert.Equal(t, 3, sender.callCount())
}

func TestController_SuccessOnlyLeavesViaSendAnother(t *testing.T) {
	sender := delivered()
	c := NewController("f1", sender, testLogger())
	fillAsha(t, c)
	submitAndWait(t, c)

	_, err := c.Submit(context.Background(), asha)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusSuccess, c.Status())
	assert.Equal(t, Fields{}, c.Fields(), "a rejected submit leaves the reset fields alone")
	assert.Equal(t, 1, sender.callCount())

	require.NoError(t, c.SendAnother())
	assert.Equal(t, StatusIdle, c.Status())

	assert.ErrorIs(t, c.SendAnother(), ErrInvalidTransition)
	assert.Equal(t, StatusIdle, c.Status())
}

func TestController_DeliveryIgnoresCallerCancellation(t *testing.T) {
	sender := delivered()
	sender.gate = make(chan struct{})
	c := NewController("f1", sender, testLogger())
	fillAsha(t, c)

	ctx, cancel := context.WithCancel(context.Background())
	results, err := c.Submit(ctx, c.Fields())
	require.NoError(t, err)
	cancel()

	res, ok := Wait(ctx, results)
	assert.False(t, ok)
	assert.Equal(t, Result{}, res)

	close(sender.gate)
	final := <-results
	assert.Equal(t, StatusSuccess, final.Status)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	assert.NoError(t, sender.ctxErr[0])
}

func TestController_ExpiredNeverWhileSubmitting(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sender := delivered()
	sender.gate = make(chan struct{})
	c := newController("f1", sender, testLogger(), func() time.Time { return now })
	fillAsha(t, c)

	assert.False(t, c.expired(now.Add(time.Hour), 2*time.Hour))
	assert.True(t, c.expired(now.Add(3*time.Hour), 2*time.Hour))

	results, err := c.Submit(context.Background(), c.Fields())
	require.NoError(t, err)
	assert.False(t, c.expired(now.Add(24*time.Hour), 2*time.Hour))

	close(sender.gate)
	<-results
	assert.True(t, c.expired(now.Add(3*time.Hour), 2*time.Hour))
}

func TestController_SubmitAppliesSnapshot(t *testing.T) {
	sender := delivered()
	c := NewController("f1", sender, testLogger())
	require.NoError(t, c.SetField(FieldNamePhone, "98765"))

	results, err := c.Submit(context.Background(), asha)
	require.NoError(t, err)
	res := <-results

	assert.Equal(t, StatusSuccess, res.Status)
	require.Equal(t, 1, sender.callCount())
	assert.Equal(t, "", sender.calls[0].TemplateData["phone"], "the submitted snapshot replaces every field")
}

func TestController_SubmitWhileSubmittingKeepsFields(t *testing.T) {
	sender := &fakeSender{result: &email.SendResult{Success: false}, gate: make(chan struct{})}
	c := NewController("f1", sender, testLogger())

	results, err := c.Submit(context.Background(), asha)
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), Fields{Name: "Mallory", Email: "m@x.com", Message: "again"})
	assert.ErrorIs(t, err, ErrSubmissionInProgress)
	assert.ErrorIs(t, c.SetField(FieldNameName, "Mallory"), ErrFormLocked)

	close(sender.gate)
	res := <-results
	assert.Equal(t, StatusError, res.Status)
	assert.Equal(t, asha, c.Fields())
}

func TestController_SetFieldLockedAfterSuccess(t *testing.T) {
	c := NewController("f1", delivered(), testLogger())
	fillAsha(t, c)
	submitAndWait(t, c)

	assert.ErrorIs(t, c.SetField(FieldNameMessage, "late keystroke"), ErrFormLocked)
	assert.Equal(t, Fields{}, c.Fields())

	require.NoError(t, c.SendAnother())
	require.NoError(t, c.SetField(FieldNameMessage, "hello"))
	assert.Equal(t, Fields{Message: "hello"}, c.Fields())
}
