package collections

import (
	"iter"

	"github.com/hasbyte1/go-minimal-ext/objects"
)

// isAbsent reports whether c is a nil interface or a typed nil pointer.
func isAbsent[T any](c Collection[T]) bool {
	return objects.IsNil(c)
}

// AddIfNotContains adds v to c unless it is already present and reports
// whether an insertion happened. A nil collection returns false.
func AddIfNotContains[T any](c Collection[T], v T) bool {
	if isAbsent(c) || c.Contains(v) {
		return false
	}
	c.Add(v)
	return true
}

// AddRange adds every value to c in order.
// No-op when c is nil.
func AddRange[T any](c Collection[T], values ...T) {
	if isAbsent(c) {
		return
	}
	for _, v := range values {
		c.Add(v)
	}
}

// AddSeq drains values into c.
// No-op when c or values is nil.
func AddSeq[T any](c Collection[T], values iter.Seq[T]) {
	if isAbsent(c) || values == nil {
		return
	}
	for v := range values {
		c.Add(v)
	}
}

// RemoveRange removes one occurrence of every value from c.
// Values that are not present are ignored. No-op when c is nil.
func RemoveRange[T any](c Collection[T], values ...T) {
	if isAbsent(c) {
		return
	}
	for _, v := range values {
		c.Remove(v)
	}
}

// RemoveSeq removes one occurrence of every value yielded by values.
// No-op when c or values is nil.
func RemoveSeq[T any](c Collection[T], values iter.Seq[T]) {
	if isAbsent(c) || values == nil {
		return
	}
	for v := range values {
		c.Remove(v)
	}
}

// IsNullOrEmpty reports whether c is nil or holds no items.
func IsNullOrEmpty[T any](c Collection[T]) bool {
	return isAbsent(c) || c.Count() == 0
}

// Push adds v to c and returns c for chaining. A nil c is returned unchanged.
func Push[C Collection[T], T any](c C, v T) C {
	if isAbsent[T](c) {
		return c
	}
	c.Add(v)
	return c
}

// CloneAll returns a new slice holding item.Clone() for every item.
// A nil slice yields an empty one.
func CloneAll[T Cloner[T]](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}
