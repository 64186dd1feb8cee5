package unionfind

import "fmt"

// Forest is a parent-pointer forest without balancing or compression.
// parent[v] == v marks a root; parent[v] == None marks an id not yet made.
type Forest struct {
	parent []int
}

// NewForest returns a forest for ids 1..n with every id unmade.
func NewForest(n int) (*Forest, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, n)
	}

	return &Forest{parent: make([]int, n+1)}, nil
}

// Len returns n.
func (f *Forest) Len() int { return len(f.parent) - 1 }

// MakeSet sets parent[v] = v.
func (f *Forest) MakeSet(v int) error {
	if v <= None || v >= len(f.parent) {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrOutOfRange, v, f.Len())
	}
	f.parent[v] = v

	return nil
}

// FindSet follows parent links from v until it reaches a root.
// Links are left untouched.
//
// Complexity: O(depth).
func (f *Forest) FindSet(v int) int {
	if v <= None || v >= len(f.parent) {
		return None
	}
	for {
		p := f.parent[v]
		if p == v || p == None {
			return p
		}
		v = p
	}
}

// Union hangs r2 under r1. Both must be roots; r1 == r2 is a no-op.
func (f *Forest) Union(r1, r2 int) error {
	if err := f.checkRoot(r1); err != nil {
		return err
	}
	if err := f.checkRoot(r2); err != nil {
		return err
	}
	f.parent[r2] = r1

	return nil
}

// Parents returns a copy of the parent array, index 0 unused.
func (f *Forest) Parents() []int {
	out := make([]int, len(f.parent))
	copy(out, f.parent)

	return out
}

func (f *Forest) checkRoot(r int) error {
	if r <= None || r >= len(f.parent) {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrOutOfRange, r, f.Len())
	}
	if f.parent[r] != r {
		return fmt.Errorf("%w: %d", ErrNotRoot, r)
	}

	return nil
}
