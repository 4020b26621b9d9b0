package collections

import "fmt"

// Pair holds two values of possibly different types. It is the element type
// produced by dict.ToPairs.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair returns a Pair of a and b.
func NewPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Unpack returns both halves of the pair.
func (p Pair[A, B]) Unpack() (A, B) { return p.First, p.Second }

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
