package dict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-minimal-ext/collections"
	"github.com/hasbyte1/go-minimal-ext/dict"
)

func TestAddIfNotContainsKey(t *testing.T) {
	m := map[string]int{}

	assert.True(t, dict.AddIfNotContainsKey(m, "a", 1))
	assert.False(t, dict.AddIfNotContainsKey(m, "a", 2))
	assert.Equal(t, 1, m["a"], "stored value must be unchanged")

	assert.False(t, dict.AddIfNotContainsKey[string, int](nil, "a", 1))
}

func TestAddIfNotContainsKeyZeroValue(t *testing.T) {
	m := map[string]*int{"nil": nil}
	assert.False(t, dict.AddIfNotContainsKey(m, "nil", new(int)), "present key holding nil is still present")
	assert.Nil(t, m["nil"])
}

func TestAddOrUpdate(t *testing.T) {
	m := map[string]string{"k": "old"}

	assert.Equal(t, "new", dict.AddOrUpdate(m, "k", "new"))
	assert.Equal(t, "v", dict.AddOrUpdate(m, "x", "v"))
	assert.Equal(t, map[string]string{"k": "new", "x": "v"}, m)

	assert.Equal(t, "", dict.AddOrUpdate[string, string](nil, "k", "v"))
}

func TestGetValueOrDefault(t *testing.T) {
	m := map[int]string{1: "one"}

	assert.Equal(t, "one", dict.GetValueOrDefault(m, 1, "none"))
	assert.Equal(t, "none", dict.GetValueOrDefault(m, 2, "none"))
	assert.Equal(t, "none", dict.GetValueOrDefault[int, string](nil, 1, "none"))
}

func TestToPairs(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	pairs := dict.ToPairs(m)
	assert.Len(t, pairs, 2)
	assert.ElementsMatch(t, []collections.Pair[string, int]{
		collections.NewPair("a", 1),
		collections.NewPair("b", 2),
	}, pairs)

	empty := dict.ToPairs[string, int](nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestToSortedPairs(t *testing.T) {
	pairs := dict.ToSortedPairs(map[string]int{"c": 3, "a": 1, "b": 2})
	assert.Equal(t, []collections.Pair[string, int]{
		{First: "a", Second: 1},
		{First: "b", Second: 2},
		{First: "c", Second: 3},
	}, pairs)
	assert.Empty(t, dict.ToSortedPairs[string, int](nil))
}
