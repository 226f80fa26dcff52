package cache

// Keyer builds cache keys. Implementations must be deterministic: the same
// inputs always map to the same key.
type Keyer interface {
	// DocumentKey addresses the rendered document of a tool call whose
	// canonical parameters hash to paramsHash.
	DocumentKey(tool, paramsHash string) string
}

// keyVersion is bumped whenever the rendered output for identical input
// changes, so stale documents are never served.
const keyVersion = "v1"

// DefaultKeyer produces keys of the form doc:<sha256>.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// DocumentKey implements Keyer.
func (DefaultKeyer) DocumentKey(tool, paramsHash string) string {
	return hashKey("doc", keyVersion, tool, paramsHash)
}

// ScopedKeyer prefixes every key of an inner Keyer, giving separate
// namespaces to processes that share one Redis instance.
//
//	k := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner (the default keyer when nil) with prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// DocumentKey implements Keyer.
func (k *ScopedKeyer) DocumentKey(tool, paramsHash string) string {
	return k.prefix + k.inner.DocumentKey(tool, paramsHash)
}
