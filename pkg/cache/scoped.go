package cache

// ScopedKeyer prefixes every key generated by an inner Keyer. The API
// server uses it to give each project its own namespace over one shared
// Redis instance.
//
// Example:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "proj:chip7:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner so every generated key carries prefix.
// A nil inner falls back to the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey generates a prefixed key for resolved artifact caching.
func (k *ScopedKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(specHash, opts)
}
