// Package objects provides nil-safe helpers that operate on arbitrary values:
// conditional callbacks, membership tests and safe string conversion.
//
// # Nil handling
//
// Go has several kinds of "absent" value: a nil pointer, map, slice, func,
// channel or interface, and a typed nil pointer stored in an interface. The
// helpers in this package treat all of them as absent:
//
//	var p *User
//	objects.IsNil(p)          // → true
//	objects.IsNil(any(p))     // → true (typed nil)
//	objects.ToStringSafe(p)   // → ""
//
// # Conditional callbacks
//
//	name := objects.IfNotNilOr(user, func(u *User) string { return u.Name }, "guest")
//
// # Membership
//
//	ok, err := objects.IsIn(status, "active", "pending")
//
// [IsIn] rejects an absent value with [ErrNilArgument] instead of comparing
// nil for equality.
package objects
