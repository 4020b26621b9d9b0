package clone

import "errors"

// Sentinel errors returned by clone.
var (
	// ErrNotCopyable is returned when the graph holds a value that has no
	// meaningful copy, such as a function or a channel.
	ErrNotCopyable = errors.New("clone: value is not copyable")

	// ErrCopierType is returned when a Copier returns a value that cannot be
	// assigned back to the type being copied.
	ErrCopierType = errors.New("clone: copier returned an incompatible type")
)
