package errx_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-minimal-ext/errx"
)

// legacyErr mimics errors produced by Cause()-style wrapping libraries.
type legacyErr struct {
	msg   string
	cause error
}

func (e *legacyErr) Error() string { return e.msg + ": " + e.cause.Error() }
func (e *legacyErr) Cause() error  { return e.cause }

func TestInnermost(t *testing.T) {
	base := errors.New("disk full")
	mid := fmt.Errorf("write: %w", base)
	top := fmt.Errorf("save: %w", mid)

	assert.Same(t, base, errx.Innermost(top))
	assert.Same(t, base, errx.Innermost(base))
	assert.Nil(t, errx.Innermost(nil))
}

func TestInnermostCause(t *testing.T) {
	base := errors.New("timeout")
	top := fmt.Errorf("request: %w", &legacyErr{msg: "dial", cause: base})
	assert.Same(t, base, errx.Innermost(top))
}

func TestCauses(t *testing.T) {
	base := errors.New("disk full")
	mid := fmt.Errorf("write: %w", base)
	top := fmt.Errorf("save: %w", mid)

	got := slices.Collect(errx.Causes(top))
	require.Len(t, got, 2)
	assert.Same(t, mid, got[0])
	assert.Same(t, base, got[1])

	assert.Empty(t, slices.Collect(errx.Causes(base)))
	assert.Empty(t, slices.Collect(errx.Causes(nil)))
}

func TestCausesIsLazy(t *testing.T) {
	base := errors.New("base")
	top := fmt.Errorf("a: %w", fmt.Errorf("b: %w", base))
	for cause := range errx.Causes(top) {
		assert.Equal(t, "b: base", cause.Error())
		break
	}
}

func TestJoinedErrorEndsChain(t *testing.T) {
	joined := errors.Join(errors.New("x"), errors.New("y"))
	top := fmt.Errorf("wrap: %w", joined)

	assert.Same(t, joined, errx.Innermost(top))
	assert.Len(t, slices.Collect(errx.Causes(top)), 1)
}

func TestChain(t *testing.T) {
	base := errors.New("base")
	top := fmt.Errorf("top: %w", base)

	assert.Equal(t, []error{top, base}, errx.Chain(top))
	assert.Equal(t, []error{}, errx.Chain(nil))
}
