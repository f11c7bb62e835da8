// Package cache stores rendered artifacts so that rendering the same script
// with the same settings twice does no work the second time.
//
// Keys come from [ArtifactKey]; values are opaque bytes (SVG, PNG, JSON...).
// [FileCache] keeps entries on disk for CLI use, [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. ttl <= 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// ArtifactKey derives the key of one rendered output. settings is any
// JSON-serializable value capturing everything that changes the output
// (bounds, geometry, palette).
func ArtifactKey(script []byte, settings any, format string) string {
	return hashKey("artifact:"+format, Hash(script), settings)
}
