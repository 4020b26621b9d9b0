// Package arr provides standalone, nil-safe helper functions for Go slices:
// clearing, joining, printing, chunking and random sampling.
//
// # Slice helpers
//
// All helpers are generic and operate on plain []T values, no wrapper type
// required. A nil slice is always accepted and treated as empty:
//
//	arr.Join([]int{1, 2, 3}, "-")         // → "1-2-3"
//	arr.ToArrayString([]string{"a", "b"}) // → "[a,\tb]"
//	arr.ToArrayString[int](nil)           // → "[]"
//	chunks, _ := arr.Chunk([]int{1, 2, 3, 4, 5}, 2) // → [[1 2] [3 4] [5]]
//
// # Two-dimensional data
//
// Jagged data ([][]T) is printed with [ToArrayString2D]. Rectangular data
// lives in a [Grid], a row-major matrix with fixed dimensions, printed with
// [ToGridString]:
//
//	g := arr.NewGrid[int](2, 2)
//	g.Set(0, 1, 7)
//	arr.ToGridString(g) // → "[[0,\t7],\n [0,\t0]]"
//
// # Randomisation
//
// [Shuffle] and [Random] use a uniform Fisher–Yates permutation and never
// modify their input.
package arr
