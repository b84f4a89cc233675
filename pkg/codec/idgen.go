package codec

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator mints a fresh identifier on every call. Implementations must
// never return the same identifier twice.
type IDGenerator func() string

// UUIDs returns upper-case random UUIDs, the form Hopscotch itself writes.
func UUIDs() IDGenerator {
	return func() string { return strings.ToUpper(uuid.NewString()) }
}

// Sequential returns prefix-1, prefix-2, ... It is safe for concurrent use and
// intended for reproducible output.
func Sequential(prefix string) IDGenerator {
	var n atomic.Uint64
	return func() string { return fmt.Sprintf("%s-%d", prefix, n.Add(1)) }
}
