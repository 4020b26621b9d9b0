// Package clone makes deep copies of arbitrary Go values.
//
// [Deep] walks the value graph with reflection, first recording the memory
// reachable through every pointer and slice, then copying each block of
// memory once. A sub-object
// reachable through several references is copied once and all copied
// references point at that single copy, and cyclic graphs terminate:
//
//	n := &Node{Name: "shared"}
//	p, _ := clone.Deep(Pair{A: n, B: n})
//	p.A == p.B // → true
//	p.A == n   // → false
//
// Identity is tracked by memory range. A pointer to a field or element of a
// copied value points at that field or element of the copy, and slices
// viewing overlapping parts of one backing array view one copied array:
//
//	g := &Graph{Node: n, Field: &n.Val, All: all, Tail: all[1:]}
//	c, _ := clone.Deep(g)
//	c.Node.Val = 42 // *c.Field == 42
//	c.All[1] = 99   // c.Tail[0] == 99
//
// Rules:
//   - Exported struct fields are copied deeply. Unexported fields are
//     carried over by value (a shallow copy), since reflection cannot write
//     them.
//   - Non-nil functions, channels and unsafe.Pointer values cannot be
//     copied and yield [ErrNotCopyable]. Nil ones are copied as nil.
//   - Types implementing [Copier] supply their own copy.
//   - Slices of different element types whose backing ranges only partly
//     overlap are copied independently of each other.
package clone
