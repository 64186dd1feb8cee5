package format_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dijkstra"
	"github.com/katalvlaran/spantree/format"
	"github.com/katalvlaran/spantree/unionfind"
)

func TestLabel(t *testing.T) {
	cases := map[int]string{
		0: "@", 1: "A", 2: "B", 26: "Z",
		27: "AA", 28: "AB", 52: "AZ", 53: "BA", 702: "ZZ", 703: "AAA",
		-3: "-3",
	}
	for v, want := range cases {
		assert.Equal(t, want, format.Label(v), "Label(%d)", v)
	}
	assert.Equal(t, "42", format.Decimal(42))
}

func square(t *testing.T) *core.Graph {
	g, err := core.NewGraph(4, []core.Edge{
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 2},
		{U: 3, V: 4, Weight: 1},
		{U: 4, V: 1, Weight: 5},
	})
	require.NoError(t, err)

	return g
}

func TestPrinter_Adjacency(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, format.New(&buf).Adjacency(square(t)))
	want := "adj[A] -> |D | 5| -> |B | 1| ->\n" +
		"adj[B] -> |C | 2| -> |A | 1| ->\n" +
		"adj[C] -> |D | 1| -> |B | 2| ->\n" +
		"adj[D] -> |A | 5| -> |C | 1| ->\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_ParentArrayAndWeight(t *testing.T) {
	var buf bytes.Buffer
	p := format.New(&buf)
	require.NoError(t, p.ParentArray([]int{0, 0, 1, 2, 3}))
	require.NoError(t, p.Weight("MST", 4))
	assert.Equal(t, "A -> @\nB -> A\nC -> B\nD -> C\nWeight of MST = 4\n", buf.String())
}

func TestPrinter_KruskalEdges(t *testing.T) {
	var buf bytes.Buffer
	err := format.New(&buf).KruskalEdges([]core.Edge{{U: 1, V: 2, Weight: 1}, {U: 3, V: 4, Weight: 1}})
	require.NoError(t, err)
	assert.Equal(t, "Edge A--1--B\nEdge C--1--D\n", buf.String())
}

func TestPrinter_ShortestPaths(t *testing.T) {
	g, err := core.NewGraph(3, []core.Edge{{U: 1, V: 2, Weight: 4}})
	require.NoError(t, err)
	res, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, format.New(&buf).ShortestPaths(res))
	want := "v = A parent = @ dist = 0\n" +
		"v = B parent = A dist = 4\n" +
		"v = C parent = @ dist = inf\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_OrderAndSets(t *testing.T) {
	ds, err := unionfind.NewForest(4)
	require.NoError(t, err)
	for v := 1; v <= 4; v++ {
		require.NoError(t, ds.MakeSet(v))
	}
	require.NoError(t, ds.Union(1, 3))

	var buf bytes.Buffer
	p := format.New(&buf, format.WithLabels(format.Decimal))
	require.NoError(t, p.Order([]int{1, 4, 3, 2}))
	require.NoError(t, p.Sets(ds))
	assert.Equal(t, "1 4 3 2\nSet{1 3 }  Set{2 }  Set{4 }\n", buf.String())
}

type failWriter struct{ n int }

func (f *failWriter) Write(b []byte) (int, error) {
	f.n++
	return 0, errors.New("disk full")
}

func TestPrinter_StopsAfterFirstError(t *testing.T) {
	w := &failWriter{}
	p := format.New(w)
	assert.EqualError(t, p.ParentArray([]int{0, 0, 1}), "disk full")
	assert.EqualError(t, p.Weight("MST", 1), "disk full")
	assert.Equal(t, 1, w.n)
	assert.Error(t, p.Err())
}
