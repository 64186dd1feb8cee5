package unionfind

import "fmt"

// Compressed is a disjoint-set forest with path compression and union by size.
type Compressed struct {
	parent []int
	size   []int
}

// NewCompressed returns a compressed forest for ids 1..n with every id unmade.
func NewCompressed(n int) (*Compressed, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, n)
	}

	return &Compressed{parent: make([]int, n+1), size: make([]int, n+1)}, nil
}

// Len returns n.
func (c *Compressed) Len() int { return len(c.parent) - 1 }

// MakeSet puts v into a singleton set of size 1.
func (c *Compressed) MakeSet(v int) error {
	if v <= None || v >= len(c.parent) {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrOutOfRange, v, c.Len())
	}
	c.parent[v] = v
	c.size[v] = 1

	return nil
}

// FindSet returns v's root and points every vertex on the walked path at it.
func (c *Compressed) FindSet(v int) int {
	if v <= None || v >= len(c.parent) || c.parent[v] == None {
		return None
	}
	root := v
	for c.parent[root] != root {
		root = c.parent[root]
	}
	for v != root {
		next := c.parent[v]
		c.parent[v] = root
		v = next
	}

	return root
}

// Union hangs the smaller set under the larger. On equal sizes r2 goes
// under r1, matching Forest.
func (c *Compressed) Union(r1, r2 int) error {
	for _, r := range [2]int{r1, r2} {
		if r <= None || r >= len(c.parent) {
			return fmt.Errorf("%w: %d not in [1,%d]", ErrOutOfRange, r, c.Len())
		}
		if c.parent[r] != r {
			return fmt.Errorf("%w: %d", ErrNotRoot, r)
		}
	}
	if r1 == r2 {
		return nil
	}
	if c.size[r1] < c.size[r2] {
		r1, r2 = r2, r1
	}
	c.parent[r2] = r1
	c.size[r1] += c.size[r2]

	return nil
}

// SizeOf returns the size of the set containing v, or 0 for unmade ids.
func (c *Compressed) SizeOf(v int) int {
	r := c.FindSet(v)
	if r == None {
		return 0
	}

	return c.size[r]
}

var (
	_ DisjointSet = (*Forest)(nil)
	_ DisjointSet = (*Compressed)(nil)
)
