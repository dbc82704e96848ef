// Package services contains application services for the contactbook CLI.
// ContactService is the only seam between the terminal view and storage.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
	"github.com/dmitrijs2005/contactbook/internal/client/repositories/contacts"
	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/logging"
)

// ContactService defines contact operations exposed to the view.
//
// Contract:
//   - Save: create a contact when form.ID is empty, otherwise update the
//     existing one keeping its CreatedAt. Updating an unknown id writes
//     nothing and returns an error wrapping common.ErrNotFound.
//   - List: the whole collection in insertion order.
//   - Remove: delete one contact; unknown ids are ignored.
//   - ClearAll: delete every contact.
//   - GetForEdit: fetch one contact, or common.ErrNotFound.
//
// Field validation is the caller's job.
type ContactService interface {
	Save(ctx context.Context, form models.ContactForm) (*models.Contact, error)
	List(ctx context.Context) ([]models.Contact, error)
	Remove(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
	GetForEdit(ctx context.Context, id string) (*models.Contact, error)
}

type contactService struct {
	repo contacts.Repository
	log  logging.Logger
	now  func() time.Time
}

// NewContactService constructs a ContactService on top of repo.
func NewContactService(repo contacts.Repository, log logging.Logger) ContactService {
	return &contactService{repo: repo, log: log, now: time.Now}
}

func (s *contactService) Save(ctx context.Context, form models.ContactForm) (*models.Contact, error) {
	if !form.IsUpdate() {
		c := models.NewContact(form, time.Time{}, s.now())
		if err := s.repo.Add(ctx, c); err != nil {
			return nil, fmt.Errorf("saving error: %w", err)
		}
		s.log.Debug(ctx, "contact created", "id", c.ID)
		return &c, nil
	}

	existing, err := s.repo.GetByID(ctx, form.ID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "contact not found for update", "id", form.ID)
		}
		return nil, fmt.Errorf("update error: %w", err)
	}

	c := models.NewContact(form, existing.CreatedAt, s.now())
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update error: %w", err)
	}
	s.log.Debug(ctx, "contact updated", "id", c.ID)
	return &c, nil
}

func (s *contactService) List(ctx context.Context) ([]models.Contact, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list error: %w", err)
	}
	return list, nil
}

func (s *contactService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("delete error: %w", err)
	}
	s.log.Debug(ctx, "contact removed", "id", id)
	return nil
}

func (s *contactService) ClearAll(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear error: %w", err)
	}
	s.log.Info(ctx, "all contacts cleared")
	return nil
}

func (s *contactService) GetForEdit(ctx context.Context, id string) (*models.Contact, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get error: %w", err)
	}
	return c, nil
}
