package try

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

var pkgLogger struct {
	mu  sync.RWMutex
	log logrus.FieldLogger
}

func init() {
	pkgLogger.log = discardLogger()
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger installs the logger that receives swallowed failures at Debug
// level. Passing nil restores the silent default. Safe for concurrent use.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = discardLogger()
	}
	pkgLogger.mu.Lock()
	defer pkgLogger.mu.Unlock()
	pkgLogger.log = l
}

func swallowed(op string, err error) {
	pkgLogger.mu.RLock()
	l := pkgLogger.log
	pkgLogger.mu.RUnlock()
	l.WithError(err).WithField("op", op).Debug("try: failure swallowed")
}

// ─────────────────────────────────────────────────────────────────────────────
// Result-returning calls
// ─────────────────────────────────────────────────────────────────────────────

// Call runs fn(v) and captures its outcome, converting a panic into a failed
// Result.
func Call[T, R any](v T, fn func(T) R) Result[R] {
	if fn == nil {
		return Err[R](ErrNilFunc)
	}
	return Of(func() (R, error) { return fn(v), nil })
}

// CallE runs fn(v) and captures its value, its error or a panic.
func CallE[T, R any](v T, fn func(T) (R, error)) Result[R] {
	if fn == nil {
		return Err[R](ErrNilFunc)
	}
	return Of(func() (R, error) { return fn(v) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Catch-all: functions
// ─────────────────────────────────────────────────────────────────────────────

// Do returns fn(v), or the zero value of R if fn fails.
func Do[T, R any](v T, fn func(T) R) R {
	var zero R
	return Or(v, fn, zero)
}

// Or returns fn(v), or def if fn fails.
func Or[T, R any](v T, fn func(T) R, def R) R {
	r, _ := GetOr(v, fn, def)
	return r
}

// Get returns fn(v) and true, or the zero value of R and false if fn fails.
func Get[T, R any](v T, fn func(T) R) (R, bool) {
	var zero R
	return GetOr(v, fn, zero)
}

// GetOr returns fn(v) and true, or def and false if fn fails.
func GetOr[T, R any](v T, fn func(T) R, def R) (R, bool) {
	r := Call(v, fn)
	if r.IsErr() {
		swallowed("GetOr", r.Err())
		return def, false
	}
	return r.Value(), true
}

// DoE returns the value of fn(v), or the zero value of R if fn returns an
// error or panics.
func DoE[T, R any](v T, fn func(T) (R, error)) R {
	var zero R
	return OrE(v, fn, zero)
}

// OrE returns the value of fn(v), or def if fn returns an error or panics.
func OrE[T, R any](v T, fn func(T) (R, error), def R) R {
	r := CallE(v, fn)
	if r.IsErr() {
		swallowed("OrE", r.Err())
		return def
	}
	return r.Value()
}

// ─────────────────────────────────────────────────────────────────────────────
// Catch-all: actions
// ─────────────────────────────────────────────────────────────────────────────

// Run calls fn(v) and reports whether it completed without panicking.
func Run[T any](v T, fn func(T)) bool {
	return RunOr(v, fn, nil)
}

// RunOr calls fn(v). If fn panics, onFail(v) is called (when non-nil) and
// RunOr returns false. A panic inside onFail is not recovered.
func RunOr[T any](v T, fn func(T), onFail func(T)) bool {
	r := Of(func() (struct{}, error) {
		if fn == nil {
			return struct{}{}, ErrNilFunc
		}
		fn(v)
		return struct{}{}, nil
	})
	if r.IsOk() {
		return true
	}
	swallowed("RunOr", r.Err())
	if onFail != nil {
		onFail(v)
	}
	return false
}
