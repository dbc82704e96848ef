package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
	"github.com/dmitrijs2005/contactbook/internal/common"
)

const (
	msgFixErrors     = "Please fix the form errors."
	msgSaved         = "Contact saved successfully!"
	msgUpdated       = "Contact updated successfully!"
	msgDeleted       = "Contact deleted."
	msgCleared       = "All contacts have been deleted."
	msgCancelled     = "Cancelled."
	msgNotFound      = "Contact not found."
	msgConfirmDelete = "Are you sure you want to delete this contact?"
	msgConfirmClear  = "Are you sure you want to delete ALL contacts? This action cannot be undone."
)

// Add prompts for a new contact and saves it.
func (a *App) Add(ctx context.Context) error {
	form, err := a.promptForm(models.ContactForm{})
	if err != nil {
		return err
	}
	return a.submit(ctx, form)
}

// Edit loads contact id into the form, prompts for changes and saves them.
func (a *App) Edit(ctx context.Context, id string) error {
	c, err := a.service.GetForEdit(ctx, id)
	if err != nil {
		a.reportError(ctx, "failed to load contact", err)
		return err
	}

	form, err := a.promptForm(c.Form())
	if err != nil {
		return err
	}
	return a.submit(ctx, form)
}

// submit validates the whole form and calls Save only when it is valid.
func (a *App) submit(ctx context.Context, form models.ContactForm) error {
	if errs := ValidateForm(form); len(errs) > 0 {
		a.notify.Error(msgFixErrors)
		return errs
	}

	if _, err := a.service.Save(ctx, form); err != nil {
		a.reportError(ctx, "failed to save contact", err)
		return err
	}

	if form.IsUpdate() {
		a.notify.Success(msgUpdated)
	} else {
		a.notify.Success(msgSaved)
	}
	return a.List(ctx)
}

// Show prints every field of one contact.
func (a *App) Show(ctx context.Context, id string) error {
	c, err := a.service.GetForEdit(ctx, id)
	if err != nil {
		a.reportError(ctx, "failed to load contact", err)
		return err
	}
	return renderDetails(a.out, *c, a.loc)
}

// Delete removes one contact after the user confirms.
func (a *App) Delete(ctx context.Context, id string) error {
	if !awaitConfirmation(ctx, a.confirmer, msgConfirmDelete) {
		a.notify.Info(msgCancelled)
		return nil
	}

	if err := a.service.Remove(ctx, id); err != nil {
		a.reportError(ctx, "failed to delete contact", err)
		return err
	}
	if err := a.List(ctx); err != nil {
		return err
	}
	a.notify.Success(msgDeleted)
	return nil
}

// Clear removes every contact after the user confirms.
func (a *App) Clear(ctx context.Context) error {
	if !awaitConfirmation(ctx, a.confirmer, msgConfirmClear) {
		a.notify.Info(msgCancelled)
		return nil
	}

	if err := a.service.ClearAll(ctx); err != nil {
		a.reportError(ctx, "failed to clear contacts", err)
		return err
	}
	if err := a.List(ctx); err != nil {
		return err
	}
	a.notify.Success(msgCleared)
	return nil
}

// List renders the current collection.
func (a *App) List(ctx context.Context) error {
	list, err := a.service.List(ctx)
	if err != nil {
		a.reportError(ctx, "failed to list contacts", err)
		return err
	}
	return renderList(a.out, list, a.format, a.loc)
}

func (a *App) reportError(ctx context.Context, msg string, err error) {
	if errors.Is(err, common.ErrNotFound) {
		a.notify.Error(msgNotFound)
		return
	}
	a.log.Error(ctx, msg, "error", err)
	a.notify.Error("Error: " + err.Error())
}
