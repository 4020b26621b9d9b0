// Package seq provides helpers for lazy sequences built on the standard
// [iter.Seq] type.
//
// # Laziness
//
// Functions returning an iter.Seq do no work until the sequence is ranged
// over, and re-ranging re-runs the whole composition. A sequence is finite
// iff its source is finite, and restartable iff its source is restartable:
//
//	s := seq.Append(seq.Prepend(slices.Values([]int{2, 3}), 1), 4)
//	slices.Collect(s) // → [1 2 3 4]
//
// # Randomness
//
// [Shuffle] buffers its source on every iteration and yields a fresh
// Fisher–Yates permutation, so two passes over the same shuffled sequence
// normally produce different orders. [PickRandom] and [PickRandomN] are
// built on top of it and never pad: asking for more elements than exist
// yields only what exists.
//
// # Nil handling
//
// A nil iter.Seq is treated as an empty sequence everywhere except
// [AreAllSame], whose contract is to reject it with [ErrNilArgument].
package seq
