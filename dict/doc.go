// Package dict provides nil-safe upsert and lookup helpers for Go maps.
//
// # Writing
//
//	m := map[string]int{}
//	dict.AddIfNotContainsKey(m, "a", 1) // → true
//	dict.AddIfNotContainsKey(m, "a", 2) // → false, m["a"] is still 1
//	dict.AddOrUpdate(m, "a", 3)         // → 3
//
// Writes to a nil map are silently skipped rather than panicking.
//
// # Reading
//
// [GetValueOrDefault] falls back to a caller default for a missing key or a
// nil map. [ToPairs] and [ToSortedPairs] flatten a map into
// collections.Pair values, the latter in ascending key order.
package dict
