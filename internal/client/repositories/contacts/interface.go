package contacts

import (
	"context"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
)

// Repository describes whole-collection operations on contacts.
type Repository interface {
	// GetAll returns the collection in insertion order. It is never nil.
	GetAll(ctx context.Context) ([]models.Contact, error)

	// GetByID returns the first contact with the given id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Contact, error)

	// Add appends c to the collection.
	Add(ctx context.Context, c models.Contact) error

	// Update replaces the contact with c.ID. An unknown id leaves the
	// collection unchanged and is not reported.
	Update(ctx context.Context, c models.Contact) error

	// Remove deletes the contact with the given id. An unknown id is a no-op.
	Remove(ctx context.Context, id string) error

	// Clear deletes the whole collection from storage.
	Clear(ctx context.Context) error
}
