package dfs_test

import (
	"testing"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dfs"
)

func benchGraph(b *testing.B, opts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	if err != nil {
		b.Fatalf("BuildGraph: %v", err)
	}

	return g
}

// BenchmarkDFS_Chain stresses stack depth on a long path.
func BenchmarkDFS_Chain(b *testing.B) {
	g := benchGraph(b, nil, builder.Path(10001))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 1)
	}
}

// BenchmarkDFS_Grid runs DFS on a 100×100 grid.
func BenchmarkDFS_Grid(b *testing.B) {
	g := benchGraph(b, nil, builder.Grid(100, 100))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 1)
	}
}

// BenchmarkDFS_FullTraversal covers a sparse random graph with many components.
func BenchmarkDFS_FullTraversal(b *testing.B) {
	g := benchGraph(b, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(2000, 0.001))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, core.NoVertex, dfs.WithFullTraversal())
	}
}

// BenchmarkFindCycle_Tree scans a complete tree-shaped graph with no cycle.
func BenchmarkFindCycle_Tree(b *testing.B) {
	g := benchGraph(b, nil, builder.Star(5000))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.FindCycle(g)
	}
}
