// Package errx walks chains of nested errors.
//
// # Causes
//
// A cause is found through the standard `Unwrap() error` method, or, for
// errors created by older wrapping libraries, a `Cause() error` method.
// Errors that wrap several causes (`Unwrap() []error`, as produced by
// errors.Join) end the chain: there is no single "next" cause to follow.
//
// # Usage
//
//	base := errors.New("disk full")
//	err := fmt.Errorf("save: %w", fmt.Errorf("write: %w", base))
//
//	errx.Innermost(err)             // → base
//	slices.Collect(errx.Causes(err)) // → [write: disk full, disk full]
package errx
