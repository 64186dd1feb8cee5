package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dijkstra"
)

// ExampleDijkstra computes distances and parents on the weighted square.
func ExampleDijkstra() {
	g, _ := core.NewGraph(4, []core.Edge{
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 2},
		{U: 3, V: 4, Weight: 1},
		{U: 4, V: 1, Weight: 5},
	})

	res, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("dist:  ", res.Dist[1:])
	fmt.Println("parent:", res.Parent[1:])
	// Output:
	// dist:   [0 1 3 4]
	// parent: [0 1 2 3]
}

// ExampleResult_PathTo prefers the three cheap hops over the direct edge.
func ExampleResult_PathTo() {
	g, _ := core.NewGraph(3, []core.Edge{
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 2},
		{U: 1, V: 3, Weight: 5},
	})

	res, _ := dijkstra.Dijkstra(g, 1)
	p, _ := res.PathTo(3)
	fmt.Println(p, res.Dist[3])
	// Output: [1 2 3] 3
}

// ExampleWithMaxDistance stops the search at a radius.
func ExampleWithMaxDistance() {
	g, _ := core.NewGraph(4, []core.Edge{
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 2},
		{U: 3, V: 4, Weight: 2},
	})

	res, _ := dijkstra.Dijkstra(g, 1, dijkstra.WithMaxDistance(4))
	fmt.Println(res.Order, res.Unreached())
	// Output: [1 2 3] [4]
}

// ExampleWithOnSettle traces the settle order with final distances.
func ExampleWithOnSettle() {
	g, _ := core.NewGraph(3, []core.Edge{{U: 1, V: 3, Weight: 1}, {U: 3, V: 2, Weight: 1}})

	_, _ = dijkstra.Dijkstra(g, 1, dijkstra.WithOnSettle(func(v int, d int64) {
		fmt.Printf("%d:%d ", v, d)
	}))
	fmt.Println()
	// Output: 1:0 3:1 2:2
}
