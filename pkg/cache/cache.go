// Package cache provides pluggable artifact caching for kit generation.
//
// # Overview
//
// Generating a kit is deterministic: the same definition, scale, paper
// and format always produce the same artifact bytes. The HTTP server
// exploits this by caching rendered artifacts keyed on a hash of the
// request, with three interchangeable backends:
//
//   - NullCache: no-op, for tests and when caching is disabled
//   - FileCache: directory-based, for single-host deployments
//   - RedisCache: shared, for multi-instance deployments
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTLs.
type Cache interface {
	// Get retrieves a value. The second return reports a hit; a miss
	// is not an error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores a value. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
