// Package kv provides the durable key/value slot the contact store persists
// into.
//
// A slot maps a string key to an opaque byte value. Reads of an absent key
// return (nil, nil); writes are whole-value upserts; deletes are idempotent.
// There is no partial update and no transaction spanning several calls: the
// last writer wins.
//
// Key Types
//
//   - type Repository        interface used by higher-level stores
//   - type SQLiteRepository  SQLite implementation over dbx.DBTX
//   - type MemoryRepository  in-process map, for tests and ephemeral sessions
package kv
