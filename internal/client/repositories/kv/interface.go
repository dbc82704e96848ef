package kv

import (
	"context"
)

// Repository is a durable key/value slot.
type Repository interface {
	// Get returns the value stored under key, or (nil, nil) if the key is absent.
	// A stored empty value reads as a non-nil empty slice.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
