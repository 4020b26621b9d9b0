package try

// Result is either a success holding a value or a failure holding an error.
// The zero Result is a success holding the zero value of T.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err returns a failed Result holding err. A nil err is recorded as
// [ErrFailed] so that the Result is never ambiguous.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrFailed
	}
	return Result[T]{err: err}
}

// Of runs fn and captures its outcome. A panic inside fn becomes a failed
// Result holding a [*PanicError].
func Of[T any](fn func() (T, error)) (r Result[T]) {
	if fn == nil {
		return Err[T](ErrNilFunc)
	}
	defer func() {
		if p := recover(); p != nil {
			r = Err[T](&PanicError{Value: p})
		}
	}()
	v, err := fn()
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// IsOk reports whether r is a success.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether r is a failure.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Value returns the success value, or the zero value of T for a failure.
func (r Result[T]) Value() T { return r.value }

// Err returns the failure cause, or nil for a success.
func (r Result[T]) Err() error { return r.err }

// Get returns the value and error, in the usual Go shape.
func (r Result[T]) Get() (T, error) { return r.value, r.err }

// OrElse returns the success value, or def for a failure.
func (r Result[T]) OrElse(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}
