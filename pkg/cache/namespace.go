package cache

import "strings"

// NamespacedKeyer prefixes every key of an inner Keyer. Several servers that
// share one Redis instance use distinct namespaces to keep their artifacts
// apart.
type NamespacedKeyer struct {
	Inner     Keyer
	Namespace string
}

// WithNamespace returns inner with keys prefixed by "<ns>:". An empty ns
// returns inner unchanged; a nil inner means the DefaultKeyer.
func WithNamespace(inner Keyer, ns string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	ns = normalizeNamespace(ns)
	if ns == "" {
		return inner
	}
	return NamespacedKeyer{Inner: inner, Namespace: ns}
}

// ArtifactKey returns the inner key under the namespace.
func (k NamespacedKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return k.Namespace + ":" + k.Inner.ArtifactKey(docHash, opts)
}

// KeyPrefix returns the prefix shared by all artifact keys in namespace ns,
// for use with RedisCache.Clear.
func KeyPrefix(ns string) string {
	if ns = normalizeNamespace(ns); ns != "" {
		return ns + ":" + ArtifactPrefix
	}
	return ArtifactPrefix
}

func normalizeNamespace(ns string) string {
	return strings.TrimSuffix(strings.TrimSpace(ns), ":")
}
