package seq

import "errors"

// ErrNilArgument is returned when a sequence argument that must be present
// is nil.
var ErrNilArgument = errors.New("seq: sequence must not be nil")
