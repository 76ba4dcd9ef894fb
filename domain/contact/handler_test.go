package contact

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/rahulchoudhary2961/MediLabsAI/domain/email"
	"github.com/rahulchoudhary2961/MediLabsAI/internal/config"
	"github.com/rahulchoudhary2961/MediLabsAI/pkg/apperror"
)

type HandlerSuite struct {
	suite.Suite
	e        *echo.Echo
	sender   *fakeSender
	registry *Registry
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.sender = delivered()
	s.registry = NewRegistry(s.sender, &config.Config{
		Contact: config.ContactConfig{FormTTL: time.Hour},
	}, testLogger())

	s.e = echo.New()
	s.e.HTTPErrorHandler = apperror.HTTPErrorHandler(testLogger())
	RegisterRoutes(s.e, NewHandler(s.registry, s.sender, testLogger()))
}

func (s *HandlerSuite) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) doJSON(target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func ashaForm() url.Values {
	return url.Values{
		"name":         {"Asha"},
		"email":        {"a@x.com"},
		"phone":        {""},
		"organization": {""},
		"message":      {"Need a demo"},
	}
}

func malloryForm() url.Values {
	return url.Values{
		"name":    {"Mallory"},
		"email":   {"m@x.com"},
		"message": {"again"},
	}
}

func (s *HandlerSuite) TestSetField() {
	ctrl := newForm(s.T(), s.registry)

	rec := s.do(http.MethodPost, "/contact/"+ctrl.ID()+"/field?name=email", url.Values{"name": {"Asha"}, "email": {"a@x.com"}})

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal(Fields{Email: "a@x.com"}, ctrl.Fields())
}

func (s *HandlerSuite) TestSetField_UnknownField() {
	ctrl := newForm(s.T(), s.registry)

	rec := s.do(http.MethodPost, "/contact/"+ctrl.ID()+"/field?name=fax", url.Values{"fax": {"1"}})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), `"code":"unknown_field"`)
	s.Equal(Fields{}, ctrl.Fields())
}

func (s *HandlerSuite) TestInvalidFormID() {
	rec := s.do(http.MethodGet, "/contact/not-a-uuid", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerSuite) TestCard_RecreatesSweptInstance() {
	id := uuid.NewString()

	rec := s.do(http.MethodGet, "/contact/"+id, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `data-status="idle"`)
	_, ok := s.registry.Get(id)
	s.True(ok)
}

func (s *HandlerSuite) TestSubmit_Delivered() {
	ctrl := newForm(s.T(), s.registry)

	rec := s.do(http.MethodPost, "/contact/"+ctrl.ID()+"/submit", ashaForm())

	s.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.Contains(body, `data-status="success"`)
	s.Contains(body, "Message Sent!")
	s.Contains(body, "Send another message")
	s.Equal(1, s.sender.callCount())
	s.Equal(Fields{}, ctrl.Fields())
}

func (s *HandlerSuite) TestSubmit_FailedKeepsValues() {
	s.sender.set(&email.SendResult{Success: false, Error: "emailjs: 400 The Public Key is invalid"}, nil)
	ctrl := newForm(s.T(), s.registry)

	rec := s.do(http.MethodPost, "/contact/"+ctrl.ID()+"/submit", ashaForm())

	s.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.Contains(body, `data-status="error"`)
	s.Contains(body, "Something went wrong. Please try again later or email us directly.")
	s.Contains(body, `value="Asha"`)
	s.Contains(body, "Need a demo")
	s.NotContains(body, "Public Key", "provider detail never reaches the visitor")
}

func (s *HandlerSuite) TestSubmit_MissingRequired() {
	ctrl := newForm(s.T(), s.registry)
	form := ashaForm()
	form.Set("message", "")

	rec := s.do(http.MethodPost, "/contact/"+ctrl.ID()+"/submit", form)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), `data-status="idle"`)
	s.Equal(0, s.sender.callCount())
	s.Equal(StatusIdle, ctrl.Status())
}

func (s *HandlerSuite) TestSubmit_InProgress() {
	s.sender.gate = make(chan struct{})
	ctrl := newForm(s.T(), s.registry)
	results, err := ctrl.Submit(s.T().Context(), asha)
	s.Require().NoError(err)

	rec := s.do(http.MethodPost, "/contact/"+ctrl.ID()+"/submit", ashaForm())

	s.Equal(http.StatusConflict, rec.Code)
	body := rec.Body.String()
	s.Contains(body, `data-status="submitting"`)
	s.Contains(body, "disabled")
	s.Contains(body, `hx-trigger="every 1s"`)

	close(s.sender.gate)
	<-results
	s.Equal(1, s.sender.callCount())
}

func (s *HandlerSuite) TestSubmit_InProgressKeepsFields() {
	s.sender.set(&email.SendResult{Success: false}, nil)
	s.sender.gate = make(chan struct{})
	ctrl := newForm(s.T(), s.registry)
	results, err := ctrl.Submit(s.T().Context(), asha)
	s.Require().NoError(err)

	rec := s.do(http.MethodPost, "/contact/"+ctrl.ID()+"/submit", malloryForm())
	s.Equal(http.StatusConflict, rec.Code)

	close(s.sender.gate)
	<-results
	s.Equal(StatusError, ctrl.Status())
	s.Equal(asha, ctrl.Fields())
}

func (s *HandlerSuite) TestSubmit_RejectedAfterSuccessKeepsFieldsEmpty() {
	ctrl := newForm(s.T(), s.registry)
	s.do(http.MethodPost, "/contact/"+ctrl.ID()+"/submit", ashaForm())
	s.Require().Equal(StatusSuccess, ctrl.Status())

	rec := s.do(http.MethodPost, "/contact/"+ctrl.ID()+"/submit", malloryForm())

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(StatusSuccess, ctrl.Status())
	s.Equal(Fields{}, ctrl.Fields())
	s.Equal(1, s.sender.callCount())

	rec = s.do(http.MethodPost, "/contact/"+ctrl.ID()+"/reset", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "Mallory")
}

func (s *HandlerSuite) TestSetField_AfterSuccessIsRejected() {
	ctrl := newForm(s.T(), s.registry)
	s.do(http.MethodPost, "/contact/"+ctrl.ID()+"/submit", ashaForm())
	s.Require().Equal(StatusSuccess, ctrl.Status())

	rec := s.do(http.MethodPost, "/contact/"+ctrl.ID()+"/field?name=message", url.Values{"message": {"late"}})

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(Fields{}, ctrl.Fields())
}

func (s *HandlerSuite) TestReset() {
	ctrl := newForm(s.T(), s.registry)
	s.do(http.MethodPost, "/contact/"+ctrl.ID()+"/submit", ashaForm())
	s.Require().Equal(StatusSuccess, ctrl.Status())

	rec := s.do(http.MethodPost, "/contact/"+ctrl.ID()+"/reset", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `data-status="idle"`)
	s.Equal(StatusIdle, ctrl.Status())

	rec = s.do(http.MethodPost, "/contact/"+ctrl.ID()+"/reset", nil)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerSuite) TestSubmitJSON() {
	rec := s.doJSON("/api/contact", `{"name":"Asha","email":"a@x.com","message":"Need a demo"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"success"}`, rec.Body.String())
	s.Equal(1, s.sender.callCount())
	s.Equal(0, s.registry.Len(), "one-shot submissions are not registered")
}

func (s *HandlerSuite) TestSubmitJSON_Validation() {
	rec := s.doJSON("/api/contact", `{"name":"Asha"}`)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.JSONEq(`{"error":{"code":"validation_error","message":"Required fields are missing","details":{"missing":["email","message"]}}}`, rec.Body.String())
	s.Equal(0, s.sender.callCount())
}

func (s *HandlerSuite) TestSubmitJSON_DeliveryFailed() {
	s.sender.set(nil, assertErr("timeout"))

	rec := s.doJSON("/api/contact", `{"name":"Asha","email":"a@x.com","message":"Need a demo"}`)

	s.Equal(http.StatusBadGateway, rec.Code)
	s.Contains(rec.Body.String(), `"code":"delivery_failed"`)
	s.NotContains(rec.Body.String(), "timeout")
}

func (s *HandlerSuite) TestSubmitJSON_BadBody() {
	rec := s.doJSON("/api/contact", `{"name":`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
