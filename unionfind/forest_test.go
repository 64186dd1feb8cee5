package unionfind_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/unionfind"
)

func newForest(t *testing.T, n int) *unionfind.Forest {
	t.Helper()
	f, err := unionfind.NewForest(n)
	require.NoError(t, err)
	for v := 1; v <= n; v++ {
		require.NoError(t, f.MakeSet(v))
	}

	return f
}

func TestForest_UnionHangsSecondUnderFirst(t *testing.T) {
	f := newForest(t, 5)

	require.NoError(t, f.Union(2, 3))
	require.NoError(t, f.Union(1, 2))
	require.NoError(t, f.Union(1, 5))

	assert.Equal(t, []int{0, 1, 1, 2, 4, 1}, f.Parents())
	assert.Equal(t, 1, f.FindSet(3), "walks 3 -> 2 -> 1")
	assert.Equal(t, []int{0, 1, 1, 2, 4, 1}, f.Parents(), "FindSet must not compress")
	assert.Equal(t, 4, f.FindSet(4))
}

func TestForest_Errors(t *testing.T) {
	_, err := unionfind.NewForest(-1)
	assert.ErrorIs(t, err, unionfind.ErrBadSize)

	f := newForest(t, 3)
	assert.ErrorIs(t, f.MakeSet(0), unionfind.ErrOutOfRange)
	assert.ErrorIs(t, f.MakeSet(4), unionfind.ErrOutOfRange)
	assert.ErrorIs(t, f.Union(1, 9), unionfind.ErrOutOfRange)

	require.NoError(t, f.Union(1, 2))
	assert.ErrorIs(t, f.Union(3, 2), unionfind.ErrNotRoot, "2 now hangs under 1")
	assert.ErrorIs(t, f.Union(2, 3), unionfind.ErrNotRoot)
	assert.Equal(t, []int{0, 1, 1, 3}, f.Parents(), "rejected unions leave the forest intact")
}

func TestForest_UnmadeIDs(t *testing.T) {
	f, err := unionfind.NewForest(3)
	require.NoError(t, err)
	require.NoError(t, f.MakeSet(2))

	assert.Equal(t, unionfind.None, f.FindSet(1))
	assert.Equal(t, unionfind.None, f.FindSet(0))
	assert.Equal(t, unionfind.None, f.FindSet(8))
	assert.Equal(t, 2, f.FindSet(2))
	assert.ErrorIs(t, f.Union(2, 1), unionfind.ErrNotRoot)
	assert.Equal(t, [][]int{{2}}, unionfind.Sets(f))
}

func TestForest_DeepChainIsIterative(t *testing.T) {
	const n = 200000
	f := newForest(t, n)
	// Build the chain n -> n-1 -> ... -> 1 so FindSet(n) walks n-1 links.
	for v := n; v > 1; v-- {
		require.NoError(t, f.Union(v-1, v))
	}
	assert.Equal(t, 1, f.FindSet(n))
}

func TestCompressed_UnionBySizeAndCompression(t *testing.T) {
	c, err := unionfind.NewCompressed(6)
	require.NoError(t, err)
	for v := 1; v <= 6; v++ {
		require.NoError(t, c.MakeSet(v))
	}

	require.NoError(t, c.Union(1, 2))
	require.NoError(t, c.Union(3, 4))
	require.NoError(t, c.Union(3, 5))
	// {3,4,5} is larger, so root 1 goes under 3 even though it was passed first.
	require.NoError(t, c.Union(1, 3))

	assert.Equal(t, 3, c.FindSet(2))
	assert.Equal(t, 5, c.SizeOf(2))
	assert.Equal(t, 1, c.SizeOf(6))
	assert.Zero(t, c.SizeOf(0))
	assert.ErrorIs(t, c.Union(1, 6), unionfind.ErrNotRoot)
	assert.NoError(t, c.Union(3, 3))

	if diff := cmp.Diff([][]int{{1, 2, 3, 4, 5}, {6}}, unionfind.Sets(c)); diff != "" {
		t.Errorf("Sets mismatch (-want +got):\n%s", diff)
	}
}

func TestSets_OrderedBySmallestMember(t *testing.T) {
	f := newForest(t, 5)
	require.NoError(t, f.Union(4, 1))
	require.NoError(t, f.Union(5, 2))

	want := [][]int{{1, 4}, {2, 5}, {3}}
	if diff := cmp.Diff(want, unionfind.Sets(f)); diff != "" {
		t.Errorf("Sets mismatch (-want +got):\n%s", diff)
	}
}

// TestForestAndCompressed_SamePartition applies the same merges to both
// implementations and checks that they agree on every "same set?" query.
func TestForestAndCompressed_SamePartition(t *testing.T) {
	const n = 12

	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	properties.Property("same partition", prop.ForAll(
		func(pairs []int) bool {
			f, _ := unionfind.NewForest(n)
			c, _ := unionfind.NewCompressed(n)
			for v := 1; v <= n; v++ {
				_ = f.MakeSet(v)
				_ = c.MakeSet(v)
			}
			for _, p := range pairs {
				a, b := p%n+1, p/n+1
				if r1, r2 := f.FindSet(a), f.FindSet(b); r1 != r2 {
					if f.Union(r1, r2) != nil {
						return false
					}
				}
				if r1, r2 := c.FindSet(a), c.FindSet(b); r1 != r2 {
					if c.Union(r1, r2) != nil {
						return false
					}
				}
			}
			for a := 1; a <= n; a++ {
				for b := 1; b <= n; b++ {
					if (f.FindSet(a) == f.FindSet(b)) != (c.FindSet(a) == c.FindSet(b)) {
						return false
					}
				}
			}

			return cmp.Equal(unionfind.Sets(f), unionfind.Sets(c))
		},
		gen.SliceOf(gen.IntRange(0, n*n-1)),
	))

	properties.TestingRun(t)
}
