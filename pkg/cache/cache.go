// Package cache provides the caching layer for packed layouts and rendered
// artifacts.
//
// Two kinds of values are cached:
//
//   - Layouts: the JSON-encoded result of packing a dataset, keyed by the
//     dataset hash and the packing options ([Keyer.LayoutKey]).
//   - Artifacts: rendered SVG, PNG or PDF bytes, keyed by the layout hash
//     and the render options ([Keyer.ArtifactKey]).
//
// Backends:
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: one JSON file per entry, used by the CLI
//   - [RedisCache]: shared cache for the HTTP server
package cache

import (
	"context"
	"time"
)

// Default TTLs for cached values.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte values under string keys.
//
// Get returns (nil, false, nil) on a miss; errors are reserved for backend
// failures. A ttl of zero means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
