package objects

import "errors"

// ErrNilArgument is returned when a helper requires a present value but
// receives nil.
var ErrNilArgument = errors.New("objects: argument must not be nil")
