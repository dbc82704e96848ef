// Package models defines client-side data models used by the contactbook CLI.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContactPreference is the channel a contact prefers to be reached on.
type ContactPreference string

const (
	PreferenceEmail ContactPreference = "email"
	PreferencePhone ContactPreference = "phone"
)

// IsValid reports whether p is one of the known preferences.
func (p ContactPreference) IsValid() bool {
	return p == PreferenceEmail || p == PreferencePhone
}

// ParseContactPreference maps user input to a ContactPreference.
// Matching is case-insensitive and ignores surrounding spaces.
func ParseContactPreference(s string) (ContactPreference, error) {
	p := ContactPreference(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("unknown contact preference %q", s)
	}
	return p, nil
}

// ContactForm is raw form input as collected by the view.
// An empty ID means the form describes a new contact.
type ContactForm struct {
	ID                string
	Name              string
	Email             string
	Phone             string
	Reason            string
	Message           string
	AcceptedTerms     bool
	ContactPreference ContactPreference
}

// IsUpdate reports whether the form refers to an existing contact.
func (f ContactForm) IsUpdate() bool {
	return f.ID != ""
}

// Contact is one persisted contact entry. It is a passive data bag: it is
// re-read from storage as is, without validation.
type Contact struct {
	// ID is immutable once assigned and unique within the collection.
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	Reason            string            `json:"reason"`
	Message           string            `json:"message"`
	AcceptedTerms     bool              `json:"acceptedTerms"`
	ContactPreference ContactPreference `json:"contactPreference"`

	// CreatedAt is set on first creation and never changes afterwards.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is reset on every create or update.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewContact builds a fully populated Contact from form input.
//
// A missing form ID gets a fresh UUID, a zero createdAt becomes now, and
// UpdatedAt is always now. Timestamps are stored in UTC. No field is
// validated here.
func NewContact(f ContactForm, createdAt, now time.Time) Contact {
	id := f.ID
	if id == "" {
		id = uuid.NewString()
	}

	now = now.UTC()
	if createdAt.IsZero() {
		createdAt = now
	}

	return Contact{
		ID:                id,
		Name:              f.Name,
		Email:             f.Email,
		Phone:             f.Phone,
		Reason:            f.Reason,
		Message:           f.Message,
		AcceptedTerms:     f.AcceptedTerms,
		ContactPreference: f.ContactPreference,
		CreatedAt:         createdAt.UTC(),
		UpdatedAt:         now,
	}
}

// Form returns the contact as editable form input, keeping its ID.
func (c Contact) Form() ContactForm {
	return ContactForm{
		ID:                c.ID,
		Name:              c.Name,
		Email:             c.Email,
		Phone:             c.Phone,
		Reason:            c.Reason,
		Message:           c.Message,
		AcceptedTerms:     c.AcceptedTerms,
		ContactPreference: c.ContactPreference,
	}
}
