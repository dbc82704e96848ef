package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
)

// formField describes how one field is prompted and stored.
type formField struct {
	field  Field
	prompt string
	get    func(f *models.ContactForm) string
	set    func(f *models.ContactForm, v string)
}

var formPrompts = []formField{
	{
		field:  FieldName,
		prompt: "Name",
		get:    func(f *models.ContactForm) string { return f.Name },
		set:    func(f *models.ContactForm, v string) { f.Name = v },
	},
	{
		field:  FieldEmail,
		prompt: "Email",
		get:    func(f *models.ContactForm) string { return f.Email },
		set:    func(f *models.ContactForm, v string) { f.Email = v },
	},
	{
		field:  FieldPhone,
		prompt: "Phone (10 digits)",
		get:    func(f *models.ContactForm) string { return f.Phone },
		set:    func(f *models.ContactForm, v string) { f.Phone = v },
	},
	{
		field:  FieldReason,
		prompt: "Reason for contact",
		get:    func(f *models.ContactForm) string { return f.Reason },
		set:    func(f *models.ContactForm, v string) { f.Reason = v },
	},
	{
		field:  FieldMessage,
		prompt: "Message",
		get:    func(f *models.ContactForm) string { return f.Message },
		set:    func(f *models.ContactForm, v string) { f.Message = v },
	},
	{
		field:  FieldPreference,
		prompt: "Preferred contact method (email/phone)",
		get: func(f *models.ContactForm) string {
			if f.ContactPreference == "" {
				return string(models.PreferenceEmail)
			}
			return string(f.ContactPreference)
		},
		set: func(f *models.ContactForm, v string) {
			if p, err := models.ParseContactPreference(v); err == nil {
				f.ContactPreference = p
				return
			}
			f.ContactPreference = models.ContactPreference(strings.TrimSpace(v))
		},
	},
	{
		field:  FieldTerms,
		prompt: "Accept the terms and conditions? (y/n)",
		get: func(f *models.ContactForm) string {
			if f.AcceptedTerms {
				return "yes"
			}
			return ""
		},
		set: func(f *models.ContactForm, v string) { f.AcceptedTerms = isYes(v) },
	},
}

// promptForm asks for every field starting from current and validates each
// one as soon as it is entered. Blank input keeps the current value.
func (a *App) promptForm(current models.ContactForm) (models.ContactForm, error) {
	label := "Add contact"
	if current.IsUpdate() {
		label = "Update contact"
	}
	fmt.Fprintf(a.out, "== %s ==\n", label)

	form := current
	for _, p := range formPrompts {
		v, err := GetTextWithDefault(a.reader, p.prompt, p.get(&form), a.out)
		if err != nil {
			return form, fmt.Errorf("failed to read %s: %w", p.field, err)
		}
		p.set(&form, v)
		if msg := ValidateField(p.field, form); msg != "" {
			a.notify.FieldError(msg)
		}
	}
	return form, nil
}
