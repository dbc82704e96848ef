package cli

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() models.ContactForm {
	return models.ContactForm{
		Name:              "Ana",
		Email:             "a@x.com",
		Phone:             "3001234567",
		Reason:            "work",
		Message:           "hello",
		AcceptedTerms:     true,
		ContactPreference: models.PreferenceEmail,
	}
}

func TestValidateField(t *testing.T) {
	tests := []struct {
		name   string
		field  Field
		mutate func(*models.ContactForm)
		want   string
	}{
		{name: "valid name", field: FieldName, want: ""},
		{name: "blank name", field: FieldName, mutate: func(f *models.ContactForm) { f.Name = "   " }, want: msgRequired},
		{name: "blank reason", field: FieldReason, mutate: func(f *models.ContactForm) { f.Reason = "" }, want: msgRequired},
		{name: "blank message", field: FieldMessage, mutate: func(f *models.ContactForm) { f.Message = "" }, want: msgRequired},
		{name: "email without at", field: FieldEmail, mutate: func(f *models.ContactForm) { f.Email = "ax.com" }, want: msgEmail},
		{name: "email without dot", field: FieldEmail, mutate: func(f *models.ContactForm) { f.Email = "a@xcom" }, want: msgEmail},
		{name: "email with inner space", field: FieldEmail, mutate: func(f *models.ContactForm) { f.Email = "a b@x.com" }, want: msgEmail},
		{name: "email with no-break space", field: FieldEmail, mutate: func(f *models.ContactForm) { f.Email = "a\u00a0b@x.com" }, want: msgEmail},
		{name: "email with ideographic space", field: FieldEmail, mutate: func(f *models.ContactForm) { f.Email = "a@x\u3000y.com" }, want: msgEmail},
		{name: "email with unicode letters", field: FieldEmail, mutate: func(f *models.ContactForm) { f.Email = "josé@dominio.co" }, want: ""},
		{name: "email padded", field: FieldEmail, mutate: func(f *models.ContactForm) { f.Email = " a@x.com " }, want: ""},
		{name: "blank email is required", field: FieldEmail, mutate: func(f *models.ContactForm) { f.Email = "" }, want: msgRequired},
		{name: "short phone", field: FieldPhone, mutate: func(f *models.ContactForm) { f.Phone = "123" }, want: msgPhone},
		{name: "long phone", field: FieldPhone, mutate: func(f *models.ContactForm) { f.Phone = "30012345678" }, want: msgPhone},
		{name: "phone with dashes", field: FieldPhone, mutate: func(f *models.ContactForm) { f.Phone = "300-123-45" }, want: msgPhone},
		{name: "blank phone", field: FieldPhone, mutate: func(f *models.ContactForm) { f.Phone = "" }, want: msgRequired},
		{name: "terms not accepted", field: FieldTerms, mutate: func(f *models.ContactForm) { f.AcceptedTerms = false }, want: msgTerms},
		{name: "unknown preference", field: FieldPreference, mutate: func(f *models.ContactForm) { f.ContactPreference = "fax" }, want: msgPreference},
		{name: "phone preference", field: FieldPreference, mutate: func(f *models.ContactForm) { f.ContactPreference = models.PreferencePhone }, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			if tt.mutate != nil {
				tt.mutate(&f)
			}
			assert.Equal(t, tt.want, ValidateField(tt.field, f))
		})
	}
}

func TestValidateForm_Valid(t *testing.T) {
	assert.Empty(t, ValidateForm(validForm()))
}

func TestValidateForm_CollectsAllErrors(t *testing.T) {
	errs := ValidateForm(models.ContactForm{Email: "nope", Phone: "123"})

	assert.Equal(t, FieldErrors{
		FieldName:       msgRequired,
		FieldEmail:      msgEmail,
		FieldPhone:      msgPhone,
		FieldReason:     msgRequired,
		FieldMessage:    msgRequired,
		FieldPreference: msgPreference,
		FieldTerms:      msgTerms,
	}, errs)
}

func TestFieldErrors_IsValidationError(t *testing.T) {
	f := validForm()
	f.Phone = "123"
	var err error = ValidateForm(f)

	require.True(t, errors.Is(err, common.ErrValidation))
	assert.Equal(t, "invalid form: phone: Phone must contain 10 digits.", err.Error())
}
