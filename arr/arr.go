package arr

import (
	"encoding/base64"
	"math/rand/v2"
	"strings"

	"github.com/hasbyte1/go-minimal-ext/objects"
)

// ─────────────────────────────────────────────────────────────────────────────
// In-place mutation
// ─────────────────────────────────────────────────────────────────────────────

// Clear resets every element of items to the zero value of T, in place.
// A nil slice is a no-op.
func Clear[T any](items []T) {
	clear(items)
}

// Push appends item to items and returns the resulting slice.
func Push[T any](items []T, item T) []T {
	return append(items, item)
}

// ─────────────────────────────────────────────────────────────────────────────
// String forms
// ─────────────────────────────────────────────────────────────────────────────

// Join concatenates the string form of every element, separated by sep.
// Returns "" for a nil or empty slice. Nil elements contribute "".
func Join[T any](items []T, sep string) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = objects.ToStringSafe(item)
	}
	return strings.Join(parts, sep)
}

// ToArrayString returns a bracketed representation of items with elements
// separated by ",\t":
//
//	ToArrayString([]int{1, 2, 3}) // → "[1,\t2,\t3]"
//
// A nil slice yields "[]" and nil elements render as "".
func ToArrayString[T any](items []T) string {
	var sb strings.Builder
	writeRow(&sb, items)
	return sb.String()
}

// ToArrayString2D returns a bracketed representation of jagged data. Rows are
// separated by a comma, a newline and one space of indentation:
//
//	ToArrayString2D([][]int{{1, 2}, {3}}) // → "[[1,\t2],\n [3]]"
func ToArrayString2D[T any](rows [][]T) string {
	if rows == nil {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, row := range rows {
		if i != 0 {
			sb.WriteString(",\n ")
		}
		writeRow(&sb, row)
	}
	sb.WriteByte(']')
	return sb.String()
}

func writeRow[T any](sb *strings.Builder, row []T) {
	sb.WriteByte('[')
	for i, item := range row {
		if i != 0 {
			sb.WriteString(",\t")
		}
		sb.WriteString(objects.ToStringSafe(item))
	}
	sb.WriteByte(']')
}

// ToBase64String returns the standard base64 encoding of data, or "" for a
// nil or empty slice.
func ToBase64String(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size. The last group may
// contain fewer than size elements. Each chunk is a copy.
//
// A nil or empty input yields an empty (non-nil) outer slice.
// Returns [ErrInvalidChunkSize] if size <= 0.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}
	if len(items) == 0 {
		return [][]T{}, nil
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a randomly permuted copy of items. items is not modified.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Random returns up to n randomly selected items (without replacement).
// If n >= len(items), a shuffled copy of all items is returned; the result is
// never padded. n <= 0 yields an empty slice.
func Random[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	s := Shuffle(items)
	if n >= len(s) {
		return s
	}
	return s[:n]
}
