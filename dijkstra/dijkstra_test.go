package dijkstra_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dijkstra"
)

func mustGraph(t testing.TB, order int, edges ...core.Edge) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(order, edges)
	require.NoError(t, err)

	return g
}

// square is 1-2 (1), 2-3 (2), 3-4 (1), 4-1 (5).
func square(t testing.TB) *core.Graph {
	return mustGraph(t, 4,
		core.Edge{U: 1, V: 2, Weight: 1},
		core.Edge{U: 2, V: 3, Weight: 2},
		core.Edge{U: 3, V: 4, Weight: 1},
		core.Edge{U: 4, V: 1, Weight: 5},
	)
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 1)
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := square(t)
	for _, src := range []int{0, 5} {
		if _, err := dijkstra.Dijkstra(g, src); !errors.Is(err, dijkstra.ErrVertexNotFound) {
			t.Errorf("source %d: expected ErrVertexNotFound, got %v", src, err)
		}
	}
}

func TestDijkstra_OptionPanics(t *testing.T) {
	g := square(t)
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		_, _ = dijkstra.Dijkstra(g, 1, dijkstra.WithMaxDistance(-1))
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		_, _ = dijkstra.Dijkstra(g, 1, dijkstra.WithInfEdgeThreshold(0))
	})
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_Square(t *testing.T) {
	res, err := dijkstra.Dijkstra(square(t), 1)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]int64{0, 1, 3, 4}, res.Dist[1:]); diff != "" {
		t.Errorf("dist mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, res.Parent[1:]); diff != "" {
		t.Errorf("parent mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, res.Order)
	assert.True(t, res.Spanning())
}

func TestDijkstra_RelaxTrace(t *testing.T) {
	type relax struct {
		v, u int
		d    int64
	}
	var got []relax
	_, err := dijkstra.Dijkstra(square(t), 1, dijkstra.WithOnRelax(func(v, u int, d int64) {
		got = append(got, relax{v, u, d})
	}))
	require.NoError(t, err)

	// Neighbors(1) = [4 2]: 4 is first reached over the weight-5 edge,
	// then improved through 3.
	want := []relax{{1, 4, 5}, {1, 2, 1}, {2, 3, 3}, {3, 4, 4}}
	assert.Equal(t, want, got)
}

// TestDijkstra_LastVertexIsProcessed checks that the final vertex leaving
// the queue is settled like every other vertex.
func TestDijkstra_LastVertexIsProcessed(t *testing.T) {
	g := mustGraph(t, 3, core.Edge{U: 1, V: 2, Weight: 1}, core.Edge{U: 2, V: 3, Weight: 1})

	var settled []int
	res, err := dijkstra.Dijkstra(g, 1, dijkstra.WithOnSettle(func(v int, _ int64) {
		settled = append(settled, v)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, settled)
	assert.Equal(t, []int64{0, 1, 2}, res.Dist[1:])
}

func TestDijkstra_ChainWithBranch(t *testing.T) {
	// 1—2—3—4—5
	//         |
	//         6—7
	g := mustGraph(t, 7,
		core.Edge{U: 1, V: 2, Weight: 1},
		core.Edge{U: 2, V: 3, Weight: 1},
		core.Edge{U: 3, V: 4, Weight: 1},
		core.Edge{U: 4, V: 5, Weight: 1},
		core.Edge{U: 4, V: 6, Weight: 1},
		core.Edge{U: 6, V: 7, Weight: 1},
	)
	res, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	expected := map[int]int64{1: 0, 2: 1, 3: 2, 4: 3, 5: 4, 6: 4, 7: 5}
	for v, want := range expected {
		if got := res.Dist[v]; got != want {
			t.Errorf("dist[%d] = %d; want %d", v, got, want)
		}
	}

	p, err := res.PathTo(7)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 6, 7}, p)
}

func TestDijkstra_SingleVertexAndSelfLoop(t *testing.T) {
	g := mustGraph(t, 1, core.Edge{U: 1, V: 1, Weight: 3})
	res, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Dist[1])
	assert.Equal(t, []int{1}, res.Order)
}

func TestDijkstra_ParallelEdgesUseLightest(t *testing.T) {
	g := mustGraph(t, 2, core.Edge{U: 1, V: 2, Weight: 9}, core.Edge{U: 2, V: 1, Weight: 4})
	res, err := dijkstra.Dijkstra(g, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Dist[1])
}

func TestDijkstra_Disconnected(t *testing.T) {
	g := mustGraph(t, 4, core.Edge{U: 1, V: 2, Weight: 1}, core.Edge{U: 3, V: 4, Weight: 1})
	res, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err, "unreached vertices are not an error")

	assert.False(t, res.Spanning())
	assert.Equal(t, []int{3, 4}, res.Unreached())
	assert.Equal(t, core.Infinity, res.Dist[3])
	assert.Equal(t, core.NoVertex, res.Parent[4])

	_, err = res.PathTo(4)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestResult_PathTo(t *testing.T) {
	res, err := dijkstra.Dijkstra(square(t), 1)
	require.NoError(t, err)

	p, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, p)

	p, err = res.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, p)

	for _, v := range []int{0, 5} {
		_, err = res.PathTo(v)
		assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	}
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, 1, dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2}, res.Dist[1:4])
	assert.Equal(t, []int{4, 5}, res.Unreached())
	assert.Equal(t, core.NoVertex, res.Parent[4])
	assert.Equal(t, []int{1, 2, 3}, res.Order)
}

func TestDijkstra_MaxDistanceZero(t *testing.T) {
	res, err := dijkstra.Dijkstra(square(t), 2, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, res.Unreached())
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := mustGraph(t, 3, core.Edge{U: 1, V: 2, Weight: 100}, core.Edge{U: 2, V: 3, Weight: 1})

	res, err := dijkstra.Dijkstra(g, 1, dijkstra.WithInfEdgeThreshold(50))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, res.Unreached())

	res, err = dijkstra.Dijkstra(g, 1, dijkstra.WithInfEdgeThreshold(101))
	require.NoError(t, err)
	assert.Equal(t, int64(101), res.Dist[3])
}

func TestDijkstra_HugeWeightsDoNotOverflow(t *testing.T) {
	g := mustGraph(t, 3,
		core.Edge{U: 1, V: 2, Weight: math.MaxInt64 - 1},
		core.Edge{U: 2, V: 3, Weight: math.MaxInt64 - 1},
	)
	res, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1), res.Dist[2])
	assert.Equal(t, core.Infinity, res.Dist[3])
}

// ------------------------------------------------------------------------
// 4. Oracles and properties
// ------------------------------------------------------------------------

// TestAgainstGonum compares distances with gonum's DijkstraFrom on random
// multigraphs that may be disconnected.
func TestAgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		n := 1 + rng.Intn(30)
		m := rng.Intn(3 * n)
		edges := make([]core.Edge, 0, m)
		for i := 0; i < m; i++ {
			edges = append(edges, core.Edge{U: rng.Intn(n) + 1, V: rng.Intn(n) + 1, Weight: rng.Int63n(30)})
		}
		g := mustGraph(t, n, edges...)

		gg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		for v := 1; v <= n; v++ {
			gg.AddNode(simple.Node(v))
		}
		for _, e := range edges {
			if e.U == e.V {
				continue
			}
			w := float64(e.Weight)
			if old := gg.WeightedEdge(int64(e.U), int64(e.V)); old != nil && old.Weight() <= w {
				continue
			}
			gg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.U), T: simple.Node(e.V), W: w})
		}

		src := 1 + rng.Intn(n)
		res, err := dijkstra.Dijkstra(g, src)
		require.NoError(t, err)
		want := path.DijkstraFrom(simple.Node(src), gg)
		for v := 1; v <= n; v++ {
			w := want.WeightTo(int64(v))
			if math.IsInf(w, 1) {
				assert.Equal(t, core.Infinity, res.Dist[v], "trial %d vertex %d", trial, v)
				continue
			}
			assert.Equal(t, w, float64(res.Dist[v]), "trial %d vertex %d", trial, v)
		}
	}
}

// TestTreeProperties checks that every tree edge is tight, that no edge
// can still be relaxed, and that exactly the BFS-reachable set is reached.
func TestTreeProperties(t *testing.T) {
	const order = 8
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	edgeGen := gopter.CombineGens(
		gen.IntRange(1, order),
		gen.IntRange(1, order),
		gen.Int64Range(0, 15),
	).Map(func(vals []interface{}) core.Edge {
		return core.Edge{U: vals[0].(int), V: vals[1].(int), Weight: vals[2].(int64)}
	})

	properties.Property("shortest-path tree", prop.ForAll(
		func(edges []core.Edge, src int) bool {
			g, err := core.NewGraph(order, edges)
			if err != nil {
				return false
			}
			res, err := dijkstra.Dijkstra(g, src)
			if err != nil {
				return false
			}
			walk, err := bfs.BFS(g, src)
			if err != nil {
				return false
			}
			for v := 1; v <= order; v++ {
				if walk.Reached(v) != (res.Dist[v] != core.Infinity) {
					return false
				}
				p := res.Parent[v]
				if p == core.NoVertex {
					continue
				}
				tight := false
				for _, nb := range g.Neighbors(p) {
					if nb.Vertex == v && res.Dist[p]+nb.Weight == res.Dist[v] {
						tight = true
					}
				}
				if !tight {
					return false
				}
			}
			for _, e := range g.Edges() {
				du, dv := res.Dist[e.U], res.Dist[e.V]
				if du != core.Infinity && dv > du+e.Weight {
					return false
				}
				if dv != core.Infinity && du > dv+e.Weight {
					return false
				}
			}

			return len(res.Order) == len(walk.Order)
		},
		gen.SliceOf(edgeGen),
		gen.IntRange(1, order),
	))

	properties.TestingRun(t)
}
