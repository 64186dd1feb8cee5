package dfs

import (
	"github.com/katalvlaran/spantree/core"
)

// cycleFrame is one entry of the FindCycle stack.
type cycleFrame struct {
	v          int
	next       int
	nbs        []core.Neighbor
	passedTree bool // the tree edge back to the parent has been skipped
}

// FindCycle reports one cycle of the undirected graph g, or nil if g is a forest.
// The cycle is closed: [v0, v1, ..., v0]. A self-loop is reported as [v, v],
// and a pair of parallel edges as [u, v, u].
//
// Vertices are colored White/Gray/Black during an iterative DFS. A Gray
// neighbor reached through anything but the tree edge back to the parent
// closes a cycle. Only the first adjacency entry pointing at the parent is
// the tree edge, so a second one (a parallel edge) is a cycle.
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.Order()
	state := make([]int, n+1)
	parent := make([]int, n+1)
	stack := make([]cycleFrame, 0, n)

	for root := 1; root <= n; root++ {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		stack = append(stack[:0], cycleFrame{v: root, nbs: g.Neighbors(root)})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.nbs) {
				state[top.v] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			u := top.nbs[top.next].Vertex
			top.next++

			if u == parent[top.v] && !top.passedTree {
				top.passedTree = true
				continue
			}
			switch state[u] {
			case White:
				state[u] = Gray
				parent[u] = top.v
				stack = append(stack, cycleFrame{v: u, nbs: g.Neighbors(u)})
			case Gray:
				return closeCycle(stack, u), nil
			}
		}
	}

	return nil, nil
}

// closeCycle extracts the stack segment from u to the top and closes it with u.
func closeCycle(stack []cycleFrame, u int) []int {
	i := len(stack) - 1
	for stack[i].v != u {
		i--
	}
	out := make([]int, 0, len(stack)-i+1)
	for _, f := range stack[i:] {
		out = append(out, f.v)
	}

	return append(out, u)
}
