package dict

import (
	"cmp"
	"maps"
	"slices"

	"github.com/hasbyte1/go-minimal-ext/collections"
)

// AddIfNotContainsKey stores value under key only if key is absent and
// reports whether it inserted. A nil map returns false.
func AddIfNotContainsKey[K comparable, V any](m map[K]V, key K, value V) bool {
	if m == nil {
		return false
	}
	if _, ok := m[key]; ok {
		return false
	}
	m[key] = value
	return true
}

// AddOrUpdate stores value under key, overwriting any previous value, and
// returns the stored value. A nil map returns the zero value of V.
func AddOrUpdate[K comparable, V any](m map[K]V, key K, value V) V {
	if m == nil {
		var zero V
		return zero
	}
	m[key] = value
	return m[key]
}

// GetValueOrDefault returns m[key], or def when key is absent or m is nil.
func GetValueOrDefault[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// ToPairs returns every entry of m as a key/value Pair. Iteration order of
// Go maps is unspecified; use [ToSortedPairs] for a stable order.
// A nil or empty map yields an empty slice.
func ToPairs[K comparable, V any](m map[K]V) []collections.Pair[K, V] {
	out := make([]collections.Pair[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, collections.NewPair(k, v))
	}
	return out
}

// ToSortedPairs is like [ToPairs] but orders the pairs by ascending key.
func ToSortedPairs[K cmp.Ordered, V any](m map[K]V) []collections.Pair[K, V] {
	keys := slices.Sorted(maps.Keys(m))
	out := make([]collections.Pair[K, V], len(keys))
	for i, k := range keys {
		out[i] = collections.NewPair(k, m[k])
	}
	return out
}
