// Package cache stores serialized pipeline outputs keyed by content hash.
//
// A [Cache] is a plain byte store. Keys come from a [Keyer], which derives
// them from the hash of the input document, the hash of the rewrite rule set
// and the output options, so a changed input or rule set never hits a stale
// entry.
//
// Two implementations are provided:
//   - [FileCache] keeps entries under a directory, one file per key
//   - [NullCache] stores nothing and is used when caching is disabled
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
//
// Get reports a miss with ok == false and a nil error. Implementations must be
// safe for sequential use; FileCache is also safe across processes.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
