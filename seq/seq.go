package seq

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/hasbyte1/go-minimal-ext/objects"
)

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Empty returns a sequence that yields nothing.
func Empty[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}

// Yield returns a sequence that yields v exactly once.
func Yield[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(v)
	}
}

// Of returns a sequence over values, in order.
func Of[T any](values ...T) iter.Seq[T] {
	return slices.Values(values)
}

// ThisOrEmpty returns src, or an empty sequence when src is nil.
func ThisOrEmpty[T any](src iter.Seq[T]) iter.Seq[T] {
	if src == nil {
		return Empty[T]()
	}
	return src
}

// Collect drains src into a new slice. A nil src yields an empty slice.
func Collect[T any](src iter.Seq[T]) []T {
	out := []T{}
	if src == nil {
		return out
	}
	for v := range src {
		out = append(out, v)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Composition
// ─────────────────────────────────────────────────────────────────────────────

// Append returns a sequence yielding every element of src followed by v.
func Append[T any](src iter.Seq[T], v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if src != nil {
			for x := range src {
				if !yield(x) {
					return
				}
			}
		}
		yield(v)
	}
}

// Prepend returns a sequence yielding v followed by every element of src.
func Prepend[T any](src iter.Seq[T], v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(v) || src == nil {
			return
		}
		for x := range src {
			if !yield(x) {
				return
			}
		}
	}
}

// Take returns a sequence yielding at most n elements of src.
func Take[T any](src iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if src == nil || n <= 0 {
			return
		}
		taken := 0
		for x := range src {
			if !yield(x) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a lazily evaluated random permutation of src. Each pass
// over the result buffers src and shuffles it again.
func Shuffle[T any](src iter.Seq[T]) iter.Seq[T] {
	if src == nil {
		return Empty[T]()
	}
	return func(yield func(T) bool) {
		items := slices.Collect(src)
		rand.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

// PickRandom returns one random element of src. The boolean is false, and
// the value is the zero value of T, when src is nil or empty.
func PickRandom[T any](src iter.Seq[T]) (T, bool) {
	for v := range PickRandomN(src, 1) {
		return v, true
	}
	var zero T
	return zero, false
}

// PickRandomN returns a sequence of at most n distinct positions of src,
// chosen at random. It never pads: a src with fewer than n elements yields
// all of them.
func PickRandomN[T any](src iter.Seq[T], n int) iter.Seq[T] {
	return Take(Shuffle(src), n)
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates
// ─────────────────────────────────────────────────────────────────────────────

// AreAllSame reports whether every element of src equals the first one.
// An empty sequence reports true. Returns [ErrNilArgument] if src is nil.
func AreAllSame[T comparable](src iter.Seq[T]) (bool, error) {
	if src == nil {
		return false, fmt.Errorf("%w: src", ErrNilArgument)
	}
	var first T
	seen := false
	for v := range src {
		if !seen {
			first, seen = v, true
			continue
		}
		if v != first {
			return false, nil
		}
	}
	return true, nil
}

// IsEmpty reports whether src yields no elements. At most one element is
// pulled. A nil src is empty.
func IsEmpty[T any](src iter.Seq[T]) bool {
	if src == nil {
		return true
	}
	for range src {
		return false
	}
	return true
}

// IsNotEmpty is the complement of [IsEmpty].
func IsNotEmpty[T any](src iter.Seq[T]) bool { return !IsEmpty(src) }

// IsNullOrEmpty reports whether src is nil or yields no elements.
func IsNullOrEmpty[T any](src iter.Seq[T]) bool {
	return src == nil || IsEmpty(src)
}

// ─────────────────────────────────────────────────────────────────────────────
// Side effects & strings
// ─────────────────────────────────────────────────────────────────────────────

// ForEach eagerly calls fn for every element of src, in order, then returns
// src unchanged for chaining. Nil src or fn is a no-op.
func ForEach[T any](src iter.Seq[T], fn func(T)) iter.Seq[T] {
	if src == nil || fn == nil {
		return src
	}
	for v := range src {
		fn(v)
	}
	return src
}

// Join concatenates the string form of every element, separated by sep.
// A nil src yields "".
func Join[T any](src iter.Seq[T], sep string) string {
	if src == nil {
		return ""
	}
	var sb strings.Builder
	first := true
	for v := range src {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		sb.WriteString(objects.ToStringSafe(v))
	}
	return sb.String()
}

// Concatenate joins every string of src with no separator.
func Concatenate(src iter.Seq[string]) string {
	return Join(src, "")
}
