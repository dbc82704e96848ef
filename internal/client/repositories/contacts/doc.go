// Package contacts provides the persistence layer for contact records.
//
// # Overview
//
// The package defines a Repository interface for whole-collection CRUD on
// models.Contact. KVRepository stores the full, ordered collection as a
// single JSON array under one fixed key of a kv.Repository slot.
//
// # Data Model
//
// Every operation reads the whole collection and, when mutating, writes the
// whole collection back. Insertion order is creation order; updates replace
// in place. Stored content that cannot be decoded reads as an empty
// collection.
//
// Typical Usage
//
//	store := contacts.NewKVRepository(slot, "contacts", log)
//	_ = store.Add(ctx, c)
//	all, _ := store.GetAll(ctx)
//	one, _ := store.GetByID(ctx, id)
//	_ = store.Remove(ctx, id)
package contacts
