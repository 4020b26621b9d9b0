package strx

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultMatchTimeout bounds an OccurrenceNum call unless overridden.
const DefaultMatchTimeout = time.Second

// MatchOptions configures [OccurrenceNum].
type MatchOptions struct {
	// Timeout bounds the whole call, summed over every match found.
	// Zero or negative means DefaultMatchTimeout.
	Timeout time.Duration

	// Flags are regexp2 options such as regexp2.IgnoreCase or
	// regexp2.Multiline. Defaults to regexp2.None.
	Flags regexp2.RegexOptions
}

// DefaultMatchOptions returns a [MatchOptions] with a one second timeout and
// no flags.
func DefaultMatchOptions() MatchOptions {
	return MatchOptions{Timeout: DefaultMatchTimeout, Flags: regexp2.None}
}

// NthIndexOf returns the byte offset of the n-th (1-indexed) occurrence of
// sub in s, or -1 when there are fewer than n occurrences, either string is
// empty, or n < 1. Each search resumes one byte after the previous hit, so
// occurrences may overlap:
//
//	NthIndexOf("ababab", "ab", 2) // → 2
//	NthIndexOf("aaaa", "aa", 3)   // → 2
func NthIndexOf(s, sub string, n int) int {
	if s == "" || sub == "" || n < 1 {
		return -1
	}
	offset := 0
	for i := 1; offset <= len(s); i++ {
		idx := strings.Index(s[offset:], sub)
		if idx < 0 {
			return -1
		}
		pos := offset + idx
		if i == n {
			return pos
		}
		offset = pos + 1
	}
	return -1
}

// OccurrenceNum returns the number of non-overlapping matches of pattern in
// s. Empty s or pattern yields 0.
//
// The whole count is bounded by opts[0].Timeout (one second by default).
// Each regexp2 search gets the budget left over from the previous ones, so
// many cheap matches cannot add up past it. Exceeding it returns an error
// wrapping [ErrMatchTimeout]. A pattern that does not
// compile returns an error wrapping [ErrInvalidPattern].
func OccurrenceNum(s, pattern string, opts ...MatchOptions) (int, error) {
	if s == "" || pattern == "" {
		return 0, nil
	}
	o := DefaultMatchOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultMatchTimeout
	}

	re, err := regexp2.Compile(pattern, o.Flags)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	deadline := time.Now().Add(o.Timeout)
	remaining := func() error {
		left := time.Until(deadline)
		if left <= 0 {
			return fmt.Errorf("%w: exceeded %v", ErrMatchTimeout, o.Timeout)
		}
		re.MatchTimeout = left
		return nil
	}

	if err := remaining(); err != nil {
		return 0, err
	}
	count := 0
	m, err := re.FindStringMatch(s)
	for err == nil && m != nil {
		count++
		if err = remaining(); err != nil {
			return 0, err
		}
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMatchTimeout, err)
	}
	return count, nil
}
