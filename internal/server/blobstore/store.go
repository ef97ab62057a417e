// Package blobstore keeps opaque byte blobs under string keys. The server
// stores each barcode list as one blob.
//
// Backends: MemoryStore (development and tests), S3Store (any S3-compatible
// endpoint) and PostgresStore. Cached adds a short-lived read cache in front
// of any of them.
package blobstore

import "context"

// Store is a keyed blob store. Get returns common.ErrorNotFound when the
// key has never been set or was deleted. Delete of a missing key succeeds.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
