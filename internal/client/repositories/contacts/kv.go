package contacts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
	"github.com/dmitrijs2005/contactbook/internal/client/repositories/kv"
	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/logging"
)

// DefaultStorageKey is the slot key the collection lives under unless
// configured otherwise.
const DefaultStorageKey = "contacts"

// KVRepository implements Repository on top of a key/value slot.
type KVRepository struct {
	slot kv.Repository
	key  string
	log  logging.Logger
}

// NewKVRepository returns a KVRepository persisting under key in slot.
func NewKVRepository(slot kv.Repository, key string, log logging.Logger) *KVRepository {
	return &KVRepository{slot: slot, key: key, log: log.With("storage_key", key)}
}

var _ Repository = (*KVRepository)(nil)

// read loads the collection. Absent or undecodable content yields an empty
// collection; only slot I/O failures are returned.
func (r *KVRepository) read(ctx context.Context) ([]models.Contact, error) {
	data, err := r.slot.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read contacts: %w", err)
	}
	if len(data) == 0 {
		return []models.Contact{}, nil
	}

	var list []models.Contact
	if err := json.Unmarshal(data, &list); err != nil {
		r.log.Warn(ctx, "stored contacts are not readable, treating as empty", "error", err)
		return []models.Contact{}, nil
	}
	if list == nil {
		list = []models.Contact{}
	}
	return list, nil
}

func (r *KVRepository) write(ctx context.Context, list []models.Contact) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode contacts: %w", err)
	}
	if err := r.slot.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("failed to write contacts: %w", err)
	}
	return nil
}

func (r *KVRepository) GetAll(ctx context.Context) ([]models.Contact, error) {
	return r.read(ctx)
}

func (r *KVRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	list, err := r.read(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			c := list[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("contact %s: %w", id, common.ErrNotFound)
}

func (r *KVRepository) Add(ctx context.Context, c models.Contact) error {
	list, err := r.read(ctx)
	if err != nil {
		return err
	}
	return r.write(ctx, append(list, c))
}

func (r *KVRepository) Update(ctx context.Context, c models.Contact) error {
	list, err := r.read(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == c.ID {
			list[i] = c
		}
	}
	return r.write(ctx, list)
}

func (r *KVRepository) Remove(ctx context.Context, id string) error {
	list, err := r.read(ctx)
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, c := range list {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return r.write(ctx, kept)
}

func (r *KVRepository) Clear(ctx context.Context) error {
	if err := r.slot.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("failed to clear contacts: %w", err)
	}
	return nil
}
