package ktree

import (
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[V any](it Iterator[V]) []V {
	var values []V
	for it.HasNext() {
		v, ok := it.Next()
		if !ok {
			break
		}
		values = append(values, v)
	}
	return values
}

func intTree(t *testing.T, values []Optional[int], k int) *KTree[int] {
	return mustNew(t, values, k)
}

func TestTraversalOrders(t *testing.T) {
	tests := []struct {
		name  string
		tree  Iterable[string]
		level string
		pre   string
		post  string
	}{
		{
			name:  "banana",
			tree:  mustNew(t, parse("_ _ A B N - -"), 2),
			level: "_ _ A B N",
			pre:   "_ _ B N A",
			post:  "B N _ A _",
		},
		{
			name:  "holes skipped",
			tree:  mustNew(t, parse("0 1 2 - 4 5 -"), 2),
			level: "0 1 2 4 5",
			pre:   "0 1 4 2 5",
			post:  "4 1 5 2 0",
		},
		{
			name:  "four wide",
			tree:  mustNew(t, parse("1 2 3 4 - - - 5 6 7 - - - - - - - - - - -"), 4),
			level: "1 2 3 4 5 6 7",
			pre:   "1 2 5 6 3 7 4",
			post:  "5 6 2 7 3 4 1",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, parseStrings(test.level), drain(test.tree.LevelOrderIterator()))
			assert.Equal(t, parseStrings(test.pre), drain(test.tree.PreOrderIterator()))
			assert.Equal(t, parseStrings(test.post), drain(test.tree.PostOrderIterator()))
		})
	}
}

func parseStrings(s string) []string {
	var values []string
	for _, v := range parse(s) {
		s, _ := v.Get()
		values = append(values, s)
	}
	return values
}

func TestTraversalIntegers(t *testing.T) {
	values := make([]Optional[int], 13)
	for i := range values {
		values[i] = Some(i + 1)
	}
	tree := intTree(t, values, 3)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}, slices.Collect(tree.LevelOrder()))
	assert.Equal(t, []int{1, 2, 5, 6, 7, 3, 8, 9, 10, 4, 11, 12, 13}, slices.Collect(tree.PreOrder()))
	assert.Equal(t, []int{5, 6, 7, 2, 8, 9, 10, 3, 11, 12, 13, 4, 1}, slices.Collect(tree.PostOrder()))
}

func TestTraversalPrefixes(t *testing.T) {
	tree := alphabetTree(t)

	take := func(it Iterator[string], n int) []string {
		var values []string
		for range n {
			v, ok := it.Next()
			require.True(t, ok)
			values = append(values, v)
		}
		return values
	}

	assert.Equal(t, []string{"a", "b", "c"}, take(tree.LevelOrderIterator(), 3))
	assert.Equal(t, []string{"a", "b", "f"}, take(tree.PreOrderIterator(), 3))
	assert.Equal(t, []string{"v", "w", "x"}, take(tree.PostOrderIterator(), 3))
}

func TestTraversalsArePermutations(t *testing.T) {
	tree := alphabetTree(t)

	level := drain(tree.LevelOrderIterator())
	pre := drain(tree.PreOrderIterator())
	post := drain(tree.PostOrderIterator())
	require.Len(t, level, tree.Size())

	sort.Strings(level)
	sort.Strings(pre)
	sort.Strings(post)
	assert.Equal(t, level, pre)
	assert.Equal(t, level, post)
}

func TestIteratorExhaustion(t *testing.T) {
	tree := mustNew(t, parse("a b"), 2)

	for _, it := range []Iterator[string]{
		tree.LevelOrderIterator(),
		tree.PreOrderIterator(),
		tree.PostOrderIterator(),
	} {
		assert.Len(t, drain(it), 2)
		assert.False(t, it.HasNext())
		v, ok := it.Next()
		assert.False(t, ok)
		assert.Equal(t, "", v)
	}
}

func TestSequencesAreSinglePass(t *testing.T) {
	tree := mustNew(t, parse("a b c"), 2)

	for _, seq := range [][]string{
		slices.Collect(tree.LevelOrder()),
		slices.Collect(tree.PreOrder()),
		slices.Collect(tree.PostOrder()),
	} {
		assert.Len(t, seq, 3)
	}

	level := tree.LevelOrder()
	assert.Len(t, slices.Collect(level), 3)
	assert.Empty(t, slices.Collect(level))

	// a fresh accessor call starts over
	assert.Len(t, slices.Collect(tree.LevelOrder()), 3)
}

func TestTraversalEarlyBreak(t *testing.T) {
	tree := alphabetTree(t)
	level := tree.LevelOrder()

	var first []string
	for v := range level {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, first)
	// the walk resumes where it stopped
	assert.Equal(t, "c", slices.Collect(level)[0])
}

func TestTraversalEmpty(t *testing.T) {
	var zero KTree[int]
	for _, tree := range []*KTree[int]{&zero, intTree(t, nil, 2), intTree(t, []Optional[int]{None[int]()}, 2)} {
		assert.Empty(t, drain(tree.LevelOrderIterator()))
		assert.Empty(t, drain(tree.PreOrderIterator()))
		assert.Empty(t, drain(tree.PostOrderIterator()))
	}
}

func TestTraversalStrings(t *testing.T) {
	tree := mustNew(t, parse("_ _ A B N - -"), 2)
	assert.Equal(t, "_ _ A B N", tree.LevelOrderString())
	assert.Equal(t, "_ _ B N A", tree.PreOrderString())
	assert.Equal(t, "B N _ A _", tree.PostOrderString())
}
