package cache

// ScopedKeyer prefixes every key of an inner Keyer. The CLI scopes keys by
// release version so entries written by another build are never read.
//
//	keyer := NewScopedKeyer(nil, buildinfo.Version+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner uses DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// DatasetKey returns the prefixed dataset key.
func (k *ScopedKeyer) DatasetKey(sourceHash string, opts DatasetKeyOpts) string {
	return k.prefix + k.inner.DatasetKey(sourceHash, opts)
}

// ArtifactKey returns the prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(datasetHash, opts)
}
