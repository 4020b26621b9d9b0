package strx

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding"
	"golang.org/x/text/language"
)

// ─────────────────────────────────────────────────────────────────────────────
// Emptiness
// ─────────────────────────────────────────────────────────────────────────────

// IsNullOrEmpty reports whether s is "".
func IsNullOrEmpty(s string) bool { return s == "" }

// IsNullOrWhiteSpace reports whether s is "" or consists only of Unicode
// white space.
func IsNullOrWhiteSpace(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// IfBlankThen returns s, or alt when s is empty or white space only.
func IfBlankThen(s, alt string) string {
	if IsNullOrWhiteSpace(s) {
		return alt
	}
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Trim & case
// ─────────────────────────────────────────────────────────────────────────────

// TrimSafe returns s without leading and trailing white space.
func TrimSafe(s string) string {
	if IsNullOrWhiteSpace(s) {
		return ""
	}
	return strings.TrimSpace(s)
}

// ToLowerSafe returns s lower-cased, or "" for blank input.
func ToLowerSafe(s string) string {
	if IsNullOrWhiteSpace(s) {
		return ""
	}
	return strings.ToLower(s)
}

// ToUpperSafe returns s upper-cased, or "" for blank input.
func ToUpperSafe(s string) string {
	if IsNullOrWhiteSpace(s) {
		return ""
	}
	return strings.ToUpper(s)
}

// ToLowerSafeIn lower-cases s using the rules of tag, or returns "" for
// blank input.
func ToLowerSafeIn(s string, tag language.Tag) string {
	if IsNullOrWhiteSpace(s) {
		return ""
	}
	return cases.Lower(tag).String(s)
}

// ToUpperSafeIn upper-cases s using the rules of tag, or returns "" for
// blank input.
func ToUpperSafeIn(s string, tag language.Tag) string {
	if IsNullOrWhiteSpace(s) {
		return ""
	}
	return cases.Upper(tag).String(s)
}

// ToLowerInvariantSafe lower-cases s with language-independent rules.
func ToLowerInvariantSafe(s string) string {
	return ToLowerSafeIn(s, language.Und)
}

// ToUpperInvariantSafe upper-cases s with language-independent rules.
func ToUpperInvariantSafe(s string) string {
	return ToUpperSafeIn(s, language.Und)
}

// ─────────────────────────────────────────────────────────────────────────────
// Case-insensitive comparison
// ─────────────────────────────────────────────────────────────────────────────

// EqualsIgnoreCase reports whether a and b are equal under simple Unicode
// case folding.
func EqualsIgnoreCase(a, b string) bool { return strings.EqualFold(a, b) }

// EqualsIgnoreCaseRune reports whether a and b are the same letter ignoring
// case.
func EqualsIgnoreCaseRune(a, b rune) bool {
	return unicode.ToUpper(a) == unicode.ToUpper(b)
}

// StartsWithIgnoreCase reports whether s begins with prefix, ignoring case.
func StartsWithIgnoreCase(s, prefix string) bool {
	n := utf8.RuneCountInString(prefix)
	runes := []rune(s)
	if len(runes) < n {
		return false
	}
	return strings.EqualFold(string(runes[:n]), prefix)
}

// EndsWithIgnoreCase reports whether s ends with suffix, ignoring case.
func EndsWithIgnoreCase(s, suffix string) bool {
	n := utf8.RuneCountInString(suffix)
	runes := []rune(s)
	if len(runes) < n {
		return false
	}
	return strings.EqualFold(string(runes[len(runes)-n:]), suffix)
}

// ContainsIgnoreCase reports whether sub occurs in s ignoring case. Without a
// tag the comparison uses language-independent full case folding; with a tag
// both strings are lower-cased with that language's rules first.
func ContainsIgnoreCase(s, sub string, tag ...language.Tag) bool {
	if len(tag) > 0 {
		lower := cases.Lower(tag[0])
		return strings.Contains(lower.String(s), lower.String(sub))
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(sub))
}

// ─────────────────────────────────────────────────────────────────────────────
// Encoding
// ─────────────────────────────────────────────────────────────────────────────

// EncodeBase64 returns the standard base64 encoding of the UTF-8 bytes of s,
// or "" for blank input.
func EncodeBase64(s string) string {
	if IsNullOrWhiteSpace(s) {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// DecodeBase64 decodes standard base64 input into a UTF-8 string.
// Blank input yields "". Malformed input returns [ErrInvalidBase64].
func DecodeBase64(s string) (string, error) {
	if IsNullOrWhiteSpace(s) {
		return "", nil
	}
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return string(b), nil
}

// ToByteArray returns the UTF-8 bytes of s. "" yields an empty, non-nil slice.
func ToByteArray(s string) []byte {
	if s == "" {
		return []byte{}
	}
	return []byte(s)
}

// ToByteArrayIn encodes s with enc, for example
// golang.org/x/text/encoding/unicode.UTF16 or charmap.Windows1252.
// A nil enc behaves like [ToByteArray].
func ToByteArrayIn(s string, enc encoding.Encoding) ([]byte, error) {
	if enc == nil || s == "" {
		return ToByteArray(s), nil
	}
	b, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnencodable, err)
	}
	return b, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Removal & rearrangement
// ─────────────────────────────────────────────────────────────────────────────

// RemoveFirst drops the first n characters (runes) of s. n is clamped to
// [0, len], so removing more characters than exist yields "".
func RemoveFirst(s string, n int) string {
	runes := []rune(s)
	n = clamp(n, len(runes))
	return string(runes[n:])
}

// RemoveLast drops the last n characters (runes) of s. n is clamped to
// [0, len].
func RemoveLast(s string, n int) string {
	runes := []rune(s)
	n = clamp(n, len(runes))
	return string(runes[:len(runes)-n])
}

// RemoveFirstCharacter drops the first character of s.
func RemoveFirstCharacter(s string) string { return RemoveFirst(s, 1) }

// RemoveLastCharacter drops the last character of s.
func RemoveLastCharacter(s string) string { return RemoveLast(s, 1) }

func clamp(n, upper int) int {
	return min(max(n, 0), upper)
}

// Reverse returns s with its characters (runes) in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// SurroundWith returns s wrapped between two copies of delim.
func SurroundWith(s, delim string) string {
	return delim + s + delim
}
