// Package collections provides small mutable collection types and nil-safe
// bulk helpers that work against any implementation of [Collection].
//
// # Overview
//
// [Collection][T] is the minimal mutable surface the helpers need: Add,
// Remove, Contains, Count and All. Two implementations ship with the
// package:
//
//   - [List][T]: ordered, duplicates allowed (like a slice with Remove).
//   - [Set][T]: unique items, iteration in insertion order.
//
// # Bulk helpers
//
//	names := collections.NewSet[string]()
//	collections.AddRange(names, "ada", "grace", "ada") // set keeps 2
//	collections.AddIfNotContains(names, "linus")       // → true
//	collections.RemoveRange(names, "grace", "missing") // missing is ignored
//
// Every helper accepts a nil collection or nil argument sequence and does
// nothing. [AddSeq] and [RemoveSeq] take an [iter.Seq] so that lazy sources
// (see package seq) can be drained straight into a collection.
//
// # Cloning
//
// [CloneAll] copies a slice of values that know how to copy themselves
// (the [Cloner] interface). For arbitrary object graphs use package clone.
package collections
