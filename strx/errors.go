package strx

import "errors"

// Sentinel errors returned by strx helpers.
var (
	// ErrInvalidBase64 is returned by DecodeBase64 for malformed input.
	ErrInvalidBase64 = errors.New("strx: invalid base64 input")

	// ErrInvalidPattern is returned by OccurrenceNum when the pattern does
	// not compile.
	ErrInvalidPattern = errors.New("strx: invalid regular expression")

	// ErrMatchTimeout is returned by OccurrenceNum when matching does not
	// finish within the configured timeout.
	ErrMatchTimeout = errors.New("strx: regular expression match timed out")

	// ErrUnencodable is returned by ToByteArrayIn when s contains characters
	// the target encoding cannot represent.
	ErrUnencodable = errors.New("strx: string cannot be represented in encoding")
)
