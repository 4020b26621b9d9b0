package collections

// Collection is the mutable container surface used by the helpers in this
// package. Both [List] and [Set] satisfy it; accept Collection in your own
// code so callers can supply their own implementation.
type Collection[T any] interface {
	// Add inserts v. Implementations decide whether duplicates are kept.
	Add(v T)

	// Remove deletes one occurrence of v and reports whether anything was
	// removed.
	Remove(v T) bool

	// Contains reports whether v is present.
	Contains(v T) bool

	// Count returns the number of items.
	Count() int

	// All returns a copy of every item as a plain Go slice.
	All() []T
}

// Cloner is implemented by values that can produce an independent copy of
// themselves.
type Cloner[T any] interface {
	Clone() T
}
