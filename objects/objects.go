package objects

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// ─────────────────────────────────────────────────────────────────────────────
// Nil checks
// ─────────────────────────────────────────────────────────────────────────────

// IsNil reports whether v is nil or a typed nil (pointer, map, slice, func,
// channel, interface or unsafe pointer) wrapped in an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsNotNil is the complement of [IsNil].
func IsNotNil(v any) bool { return !IsNil(v) }

// ─────────────────────────────────────────────────────────────────────────────
// Conditional callbacks
// ─────────────────────────────────────────────────────────────────────────────

// IfNotNil calls fn(p) only when p is not nil.
func IfNotNil[T any](p *T, fn func(*T)) {
	if p != nil && fn != nil {
		fn(p)
	}
}

// IfNotNilMap returns fn(p), or the zero value of R when p is nil.
func IfNotNilMap[T, R any](p *T, fn func(*T) R) R {
	var zero R
	return IfNotNilOr(p, fn, zero)
}

// IfNotNilOr returns fn(p), or def when p is nil.
func IfNotNilOr[T, R any](p *T, fn func(*T) R, def R) R {
	if p == nil || fn == nil {
		return def
	}
	return fn(p)
}

// ─────────────────────────────────────────────────────────────────────────────
// Membership
// ─────────────────────────────────────────────────────────────────────────────

// IsIn reports whether v equals any of values.
// Returns [ErrNilArgument] if v itself is nil.
func IsIn[T comparable](v T, values ...T) (bool, error) {
	if IsNil(v) {
		return false, fmt.Errorf("%w: v", ErrNilArgument)
	}
	for _, candidate := range values {
		if candidate == v {
			return true, nil
		}
	}
	return false, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

// ToStringSafe returns the string form of v, or "" when v is nil.
//
// Scalars, []byte, fmt.Stringer and error values are converted with
// github.com/spf13/cast (pointers are dereferenced first); anything cast does
// not understand falls back to fmt.Sprint.
func ToStringSafe(v any) string {
	if IsNil(v) {
		return ""
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
