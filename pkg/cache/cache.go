// Package cache stores rendered postcard artifacts between CLI runs.
//
// A render is a pure function of its dataset and options, so identical
// requests can be served from disk. Keys are built by a [Keyer] from a
// content hash of the dataset plus every option that influences the output.
//
// Two implementations are provided:
//   - [FileCache]: one JSON entry per key under a directory (CLI default)
//   - [NullCache]: stores nothing (--no-cache)
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// TTLs for cached values.
const (
	TTLArtifact = 7 * 24 * time.Hour
	TTLDataset  = 24 * time.Hour
)

// Key types reported to observability hooks.
const (
	KeyTypeDataset  = "dataset"
	KeyTypeArtifact = "artifact"
)
