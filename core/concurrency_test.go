// Package core_test verifies that a built core.Graph can be shared by
// concurrent readers. Run with -race.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dijkstra"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

// TestConcurrentNeighbors scans every adjacency range from many goroutines
// and checks each one sees 2E entries in total.
func TestConcurrentNeighbors(t *testing.T) {
	g, err := core.NewGraph(500, randomEdges(500, 2000))
	require.NoError(t, err)

	const readers = 32
	var wg sync.WaitGroup
	wg.Add(readers)
	counts := make([]int, readers)
	for i := 0; i < readers; i++ {
		go func(id int) {
			defer wg.Done()
			for v := 1; v <= g.Order(); v++ {
				counts[id] += len(g.Neighbors(v))
			}
		}(i)
	}
	wg.Wait()

	for i, c := range counts {
		require.Equal(t, g.AdjacencyCount(), c, "reader %d", i)
	}
}

// TestConcurrentAlgorithms runs Kruskal and Dijkstra on one shared graph;
// every run must produce the same answer as a sequential run.
func TestConcurrentAlgorithms(t *testing.T) {
	g, err := core.NewGraph(300, randomEdges(300, 1500))
	require.NoError(t, err)

	wantMST, err := prim_kruskal.Kruskal(g)
	if err != nil {
		require.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	}
	wantSPT, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	mst := make([]int64, workers)
	dist := make([][]int64, workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			if res, _ := prim_kruskal.Kruskal(g); res != nil {
				mst[id] = res.Weight
			}
			if res, err := dijkstra.Dijkstra(g, 1); err == nil {
				dist[id] = res.Dist
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.Equal(t, wantMST.Weight, mst[i], "worker %d", i)
		require.Equal(t, wantSPT.Dist, dist[i], "worker %d", i)
	}
}
