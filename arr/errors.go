package arr

import "errors"

// Sentinel errors returned by arr helpers.
var (
	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = errors.New("arr: chunk size must be greater than 0")

	// ErrIndexOutOfRange is returned by Grid accessors for a row or column
	// outside the grid.
	ErrIndexOutOfRange = errors.New("arr: index out of range")
)
