package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats defines the allowed list output formats.
var ValidFormats = []string{FormatText, FormatJSON}

const timestampLayout = "2006-01-02 15:04:05"

// renderList writes list in the given format. Timestamps are shown in loc.
func renderList(w io.Writer, list []models.Contact, format string, loc *time.Location) error {
	if format == FormatJSON {
		return renderJSON(w, list)
	}
	return renderText(w, list, loc)
}

func renderText(w io.Writer, list []models.Contact, loc *time.Location) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No contacts saved.")
		return err
	}

	if _, err := fmt.Fprintf(w, "Contacts (%d)\n", len(list)); err != nil {
		return err
	}
	for _, c := range list {
		phone := c.Phone
		if phone == "" {
			phone = "N/A"
		}
		_, err := fmt.Fprintf(w, "\n[%s]\n  Name:  %s\n  Email: %s\n  Phone: %s\n  Last updated: %s\n",
			c.ID, c.Name, c.Email, phone, c.UpdatedAt.In(loc).Format(timestampLayout))
		if err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, list []models.Contact) error {
	if list == nil {
		list = []models.Contact{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

// renderDetails writes every field of one contact.
func renderDetails(w io.Writer, c models.Contact, loc *time.Location) error {
	terms := "no"
	if c.AcceptedTerms {
		terms = "yes"
	}
	_, err := fmt.Fprintf(w,
		"[%s]\n  Name:       %s\n  Email:      %s\n  Phone:      %s\n  Reason:     %s\n  Message:    %s\n  Preference: %s\n  Terms:      %s\n  Created:    %s\n  Updated:    %s\n",
		c.ID, c.Name, c.Email, c.Phone, c.Reason, c.Message, c.ContactPreference, terms,
		c.CreatedAt.In(loc).Format(timestampLayout), c.UpdatedAt.In(loc).Format(timestampLayout))
	return err
}
