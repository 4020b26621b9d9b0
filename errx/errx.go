package errx

import "iter"

type causer interface {
	Cause() error
}

// next returns the single direct cause of err, or nil.
func next(err error) error {
	switch e := err.(type) {
	case interface{ Unwrap() error }:
		return e.Unwrap()
	case causer:
		return e.Cause()
	}
	return nil
}

// Innermost returns the deepest cause in err's chain. An error without a
// cause is its own innermost error; a nil err returns nil.
func Innermost(err error) error {
	for err != nil {
		cause := next(err)
		if cause == nil {
			return err
		}
		err = cause
	}
	return nil
}

// Causes returns a lazy sequence of every nested cause of err, from its
// direct cause down to the innermost one. err itself is not included.
func Causes(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		if err == nil {
			return
		}
		for cause := next(err); cause != nil; cause = next(cause) {
			if !yield(cause) {
				return
			}
		}
	}
}

// Chain returns err followed by all of its causes. A nil err yields an
// empty slice.
func Chain(err error) []error {
	if err == nil {
		return []error{}
	}
	out := []error{err}
	for cause := range Causes(err) {
		out = append(out, cause)
	}
	return out
}
