package contact

import "github.com/rahulchoudhary2961/MediLabsAI/domain/email"

// FieldName identifies one of the five contact form inputs.
type FieldName string

const (
	FieldNameName         FieldName = "name"
	FieldNameEmail        FieldName = "email"
	FieldNamePhone        FieldName = "phone"
	FieldNameOrganization FieldName = "organization"
	FieldNameMessage      FieldName = "message"
)

// AllFields lists every field in form order.
var AllFields = []FieldName{
	FieldNameName,
	FieldNameEmail,
	FieldNamePhone,
	FieldNameOrganization,
	FieldNameMessage,
}

// RequiredFields must be non-empty before a submission is attempted.
var RequiredFields = []FieldName{
	FieldNameName,
	FieldNameEmail,
	FieldNameMessage,
}

// ParseFieldName maps a form input name to its FieldName.
func ParseFieldName(s string) (FieldName, error) {
	for _, f := range AllFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", ErrUnknownField
}

// Fields holds the visitor's in-progress contact request.
type Fields struct {
	Name         string `json:"name" form:"name"`
	Email        string `json:"email" form:"email"`
	Phone        string `json:"phone" form:"phone"`
	Organization string `json:"organization" form:"organization"`
	Message      string `json:"message" form:"message"`
}

func (f *Fields) ptr(name FieldName) *string {
	switch name {
	case FieldNameName:
		return &f.Name
	case FieldNameEmail:
		return &f.Email
	case FieldNamePhone:
		return &f.Phone
	case FieldNameOrganization:
		return &f.Organization
	case FieldNameMessage:
		return &f.Message
	}
	return nil
}

// Get returns the value of name, or "" for an unknown name.
func (f Fields) Get(name FieldName) string {
	if p := f.ptr(name); p != nil {
		return *p
	}
	return ""
}

// Set replaces exactly one field.
func (f *Fields) Set(name FieldName, value string) error {
	p := f.ptr(name)
	if p == nil {
		return ErrUnknownField
	}
	*p = value
	return nil
}

// Reset clears all five fields.
func (f *Fields) Reset() {
	*f = Fields{}
}

// MissingRequired returns the empty required fields in form order.
func (f Fields) MissingRequired() []FieldName {
	var missing []FieldName
	for _, name := range RequiredFields {
		if f.Get(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// params is the payload handed to the delivery collaborator.
func (f Fields) params() email.TemplateContext {
	return email.TemplateContext{
		"name":         f.Name,
		"email":        f.Email,
		"phone":        f.Phone,
		"organization": f.Organization,
		"message":      f.Message,
	}
}
