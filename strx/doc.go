// Package strx provides total, nil-safe string helpers: trimming and case
// conversion, case-insensitive comparison, base64, parsing with a fallback
// default, substring removal, occurrence search and digests.
//
// # Absent input
//
// Go strings cannot be nil, so the empty string plays the role of an absent
// value. Helpers never panic on "" and substitute an empty string, false, -1
// or the caller's default instead. The trim, case and base64 helpers also
// treat a whitespace-only string as absent.
//
// # Culture
//
// The plain case helpers use Go's default Unicode mappings. The *In variants
// take a [language.Tag] and apply language-specific rules via
// golang.org/x/text/cases:
//
//	strx.ToUpperSafe("istanbul")                  // → "ISTANBUL"
//	strx.ToUpperSafeIn("istanbul", language.Turkish) // → "İSTANBUL"
//
// # Regular expressions
//
// [OccurrenceNum] uses github.com/dlclark/regexp2, a backtracking engine
// compatible with .NET syntax, which supports a per-match timeout. The
// default timeout is one second; see [MatchOptions].
package strx
