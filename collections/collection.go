package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hasbyte1/go-minimal-ext/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// List
// ─────────────────────────────────────────────────────────────────────────────

// List is an ordered, growable collection that allows duplicates.
//
// Unlike a bare slice, a List is mutated in place through its pointer, which
// lets the package-level helpers (AddRange, RemoveRange, …) operate on it via
// the [Collection] interface. Read methods accept a nil *List and behave as if
// it were empty.
//
// A List is not safe for concurrent mutation.
type List[T comparable] struct {
	items []T
}

// NewList creates a List holding a copy of items.
func NewList[T comparable](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

// Add appends v.
func (l *List[T]) Add(v T) { l.items = append(l.items, v) }

// Remove deletes the first occurrence of v and reports whether it was found.
func (l *List[T]) Remove(v T) bool {
	if l == nil {
		return false
	}
	i := slices.Index(l.items, v)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

// RemoveAt deletes the item at index.
// Returns [ErrIndexOutOfRange] when index is outside [0, Count()-1].
func (l *List[T]) RemoveAt(index int) error {
	if index < 0 || index >= l.Count() {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	l.items = slices.Delete(l.items, index, index+1)
	return nil
}

// Pop removes and returns the last item.
// Returns [ErrEmptyCollection] when the list is empty.
func (l *List[T]) Pop() (T, error) {
	var zero T
	if l.Count() == 0 {
		return zero, ErrEmptyCollection
	}
	last := l.items[len(l.items)-1]
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	return last, nil
}

// Contains reports whether v is present.
func (l *List[T]) Contains(v T) bool {
	return l != nil && slices.Contains(l.items, v)
}

// Get returns the item at index together with a presence flag.
func (l *List[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= l.Count() {
		return zero, false
	}
	return l.items[index], true
}

// Count returns the number of items.
func (l *List[T]) Count() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// All returns a copy of the items.
func (l *List[T]) All() []T {
	if l == nil {
		return []T{}
	}
	return slices.Clone(l.items)
}

// Values returns an iterator over the items in order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Chunk splits the list into consecutive groups of size. See [arr.Chunk].
func (l *List[T]) Chunk(size int) ([][]T, error) {
	if l == nil {
		return arr.Chunk[T](nil, size)
	}
	return arr.Chunk(l.items, size)
}

// String returns a JSON representation of the list.
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	b, err := json.Marshal(l.All())
	if err != nil {
		return fmt.Sprintf("%v", l.All())
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Set
// ─────────────────────────────────────────────────────────────────────────────

// Set is a collection of unique items that remembers insertion order.
// Add, Remove and Contains run in constant time.
// Read methods accept a nil *Set and behave as if it were empty.
type Set[T comparable] struct {
	items *orderedmap.OrderedMap[T, struct{}]
}

// NewSet creates a Set from items; duplicates are dropped.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{items: orderedmap.New[T, struct{}](len(items))}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// Add inserts v if it is not already present.
func (s *Set[T]) Add(v T) {
	if s.items == nil {
		s.items = orderedmap.New[T, struct{}]()
	}
	if _, ok := s.items.Get(v); ok {
		return
	}
	s.items.Set(v, struct{}{})
}

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	if s == nil || s.items == nil {
		return false
	}
	_, ok := s.items.Delete(v)
	return ok
}

// Contains reports whether v is present.
func (s *Set[T]) Contains(v T) bool {
	if s == nil || s.items == nil {
		return false
	}
	_, ok := s.items.Get(v)
	return ok
}

// Count returns the number of items.
func (s *Set[T]) Count() int {
	if s == nil || s.items == nil {
		return 0
	}
	return s.items.Len()
}

// All returns the items in insertion order.
func (s *Set[T]) All() []T {
	out := make([]T, 0, s.Count())
	for v := range s.Values() {
		out = append(out, v)
	}
	return out
}

// Values returns an iterator over the items in insertion order.
func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil || s.items == nil {
			return
		}
		for p := s.items.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// String returns a JSON representation of the set.
func (s *Set[T]) String() string {
	b, err := json.Marshal(s.All())
	if err != nil {
		return fmt.Sprintf("%v", s.All())
	}
	return string(b)
}
