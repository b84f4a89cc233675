package cache

// ScopedKeyer wraps a Keyer with a prefix so that several tools can share one
// cache directory without colliding.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "hsproject:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer means [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// OutputKey generates a prefixed output key.
func (k *ScopedKeyer) OutputKey(inputHash, rulesHash string, opts OutputKeyOpts) string {
	return k.prefix + k.inner.OutputKey(inputHash, rulesHash, opts)
}
