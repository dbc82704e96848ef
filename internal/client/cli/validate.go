package cli

import (
	"regexp"
	"strings"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
	"github.com/dmitrijs2005/contactbook/internal/common"
)

// Field names a validated form input.
type Field string

const (
	FieldName       Field = "name"
	FieldEmail      Field = "email"
	FieldPhone      Field = "phone"
	FieldReason     Field = "reason"
	FieldMessage    Field = "message"
	FieldPreference Field = "contactPreference"
	FieldTerms      Field = "acceptedTerms"
)

// formFields is the prompt and report order of the form.
var formFields = []Field{
	FieldName, FieldEmail, FieldPhone, FieldReason, FieldMessage, FieldPreference, FieldTerms,
}

const (
	msgRequired   = "This field is required."
	msgEmail      = "Email format is invalid."
	msgPhone      = "Phone must contain 10 digits."
	msgTerms      = "You must accept the terms and conditions."
	msgPreference = "Choose email or phone."
)

var (
	emailRe = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}]+@[^\s\p{Z}\x{FEFF}]+\.[^\s\p{Z}\x{FEFF}]+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
)

// FieldErrors maps a field to its validation message.
// It unwraps to common.ErrValidation.
type FieldErrors map[Field]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range formFields {
		if msg, ok := e[f]; ok {
			parts = append(parts, string(f)+": "+msg)
		}
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

func (e FieldErrors) Unwrap() error { return common.ErrValidation }

// ValidateField checks one field of form and returns its error message,
// or "" when the field is valid.
func ValidateField(field Field, form models.ContactForm) string {
	switch field {
	case FieldTerms:
		if !form.AcceptedTerms {
			return msgTerms
		}
		return ""
	case FieldPreference:
		if !form.ContactPreference.IsValid() {
			return msgPreference
		}
		return ""
	}

	value := strings.TrimSpace(fieldValue(field, form))
	switch {
	case value == "":
		return msgRequired
	case field == FieldEmail && !emailRe.MatchString(value):
		return msgEmail
	case field == FieldPhone && !phoneRe.MatchString(value):
		return msgPhone
	}
	return ""
}

// ValidateForm checks every field. The result is empty when form is valid.
func ValidateForm(form models.ContactForm) FieldErrors {
	errs := FieldErrors{}
	for _, f := range formFields {
		if msg := ValidateField(f, form); msg != "" {
			errs[f] = msg
		}
	}
	return errs
}

func fieldValue(field Field, form models.ContactForm) string {
	switch field {
	case FieldName:
		return form.Name
	case FieldEmail:
		return form.Email
	case FieldPhone:
		return form.Phone
	case FieldReason:
		return form.Reason
	case FieldMessage:
		return form.Message
	}
	return ""
}
