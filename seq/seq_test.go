package seq_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-minimal-ext/seq"
)

// counting wraps src and records how many elements were pulled.
func counting[T any](src iter.Seq[T], pulled *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range src {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}

func TestAppendPrepend(t *testing.T) {
	s := seq.Append(seq.Prepend(seq.Of(2, 3), 1), 4)
	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(s))
	// restartable: a second pass re-runs the composition
	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(s))

	assert.Equal(t, []int{9}, slices.Collect(seq.Append(nil, 9)))
	assert.Equal(t, []int{9}, slices.Collect(seq.Prepend(nil, 9)))
}

func TestAppendIsLazy(t *testing.T) {
	pulled := 0
	s := seq.Append(counting(seq.Of(1, 2, 3), &pulled), 4)
	assert.Zero(t, pulled)

	for v := range s {
		if v == 1 {
			break
		}
	}
	assert.Equal(t, 1, pulled)
}

func TestYieldAndEmpty(t *testing.T) {
	assert.Equal(t, []string{"x"}, slices.Collect(seq.Yield("x")))
	assert.Empty(t, slices.Collect(seq.Empty[int]()))
	assert.Equal(t, []int{}, seq.Collect[int](nil))
}

func TestThisOrEmpty(t *testing.T) {
	assert.Empty(t, slices.Collect(seq.ThisOrEmpty[int](nil)))
	assert.Equal(t, []int{1}, slices.Collect(seq.ThisOrEmpty(seq.Of(1))))
}

func TestTake(t *testing.T) {
	assert.Equal(t, []int{1, 2}, slices.Collect(seq.Take(seq.Of(1, 2, 3), 2)))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(seq.Take(seq.Of(1, 2, 3), 10)))
	assert.Empty(t, slices.Collect(seq.Take(seq.Of(1), 0)))
}

func TestShufflePermutes(t *testing.T) {
	src := seq.Of(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	got := slices.Collect(seq.Shuffle(src))
	slices.Sort(got)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, got)

	assert.Empty(t, slices.Collect(seq.Shuffle[int](nil)))
}

func TestShuffleReshufflesEachPass(t *testing.T) {
	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}
	s := seq.Shuffle(slices.Values(items))
	first := slices.Collect(s)
	// 50! orders; a repeat in 5 extra passes is practically impossible
	differs := false
	for range 5 {
		if !slices.Equal(first, slices.Collect(s)) {
			differs = true
			break
		}
	}
	assert.True(t, differs)
}

func TestPickRandom(t *testing.T) {
	src := []string{"a", "b", "c"}
	v, ok := seq.PickRandom(slices.Values(src))
	require.True(t, ok)
	assert.Contains(t, src, v)

	v, ok = seq.PickRandom[string](nil)
	assert.False(t, ok)
	assert.Equal(t, "", v)

	_, ok = seq.PickRandom(seq.Empty[string]())
	assert.False(t, ok)
}

func TestPickRandomN(t *testing.T) {
	src := []int{1, 2, 3, 4, 5}
	for n := 0; n <= 8; n++ {
		got := slices.Collect(seq.PickRandomN(slices.Values(src), n))
		assert.Len(t, got, min(n, len(src)))
		for _, v := range got {
			assert.Contains(t, src, v)
		}
		assert.Len(t, uniq(got), len(got), "picked positions must be distinct")
	}
	assert.Empty(t, slices.Collect(seq.PickRandomN[int](nil, 3)))
}

func uniq(items []int) map[int]struct{} {
	out := make(map[int]struct{}, len(items))
	for _, v := range items {
		out[v] = struct{}{}
	}
	return out
}

func TestAreAllSame(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want bool
	}{
		{"empty", nil, true},
		{"single", []string{"a"}, true},
		{"same", []string{"a", "a", "a"}, true},
		{"different", []string{"a", "a", "b"}, false},
		{"zero values", []string{"", ""}, true},
		{"zero then value", []string{"", "x"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := seq.AreAllSame(slices.Values(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAreAllSameNil(t *testing.T) {
	_, err := seq.AreAllSame[int](nil)
	assert.ErrorIs(t, err, seq.ErrNilArgument)
}

func TestIsEmpty(t *testing.T) {
	pulled := 0
	s := counting(seq.Of(1, 2, 3), &pulled)
	assert.False(t, seq.IsEmpty(s))
	assert.Equal(t, 1, pulled, "IsEmpty pulls at most one element")

	assert.True(t, seq.IsEmpty(seq.Empty[int]()))
	assert.True(t, seq.IsNotEmpty(seq.Of(0)))
	assert.False(t, seq.IsNotEmpty(seq.Empty[int]()))

	assert.True(t, seq.IsNullOrEmpty[int](nil))
	assert.True(t, seq.IsNullOrEmpty(seq.Empty[int]()))
	assert.False(t, seq.IsNullOrEmpty(seq.Of(1)))
}

func TestForEach(t *testing.T) {
	var got []int
	src := seq.Of(1, 2, 3)
	out := seq.ForEach(src, func(v int) { got = append(got, v) })

	assert.Equal(t, []int{1, 2, 3}, got, "ForEach is eager and ordered")
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(out))

	assert.Nil(t, seq.ForEach[int](nil, func(int) { t.Fatal("called") }))
	assert.NotNil(t, seq.ForEach(src, nil))
}

func TestJoinAndConcatenate(t *testing.T) {
	assert.Equal(t, "1, 2, 3", seq.Join(seq.Of(1, 2, 3), ", "))
	assert.Equal(t, "", seq.Join[int](nil, ","))
	assert.Equal(t, "abc", seq.Concatenate(seq.Of("a", "b", "c")))
	assert.Equal(t, "", seq.Concatenate(nil))
}
