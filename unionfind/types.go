package unionfind

import "errors"

// None is returned by FindSet for ids that are out of range or never passed to MakeSet.
const None = 0

var (
	// ErrBadSize indicates a negative element count.
	ErrBadSize = errors.New("unionfind: size must be non-negative")

	// ErrOutOfRange indicates an id outside [1, n].
	ErrOutOfRange = errors.New("unionfind: id out of range")

	// ErrNotRoot indicates that Union received an id that is not the root of its set.
	ErrNotRoot = errors.New("unionfind: id is not a set root")
)

// DisjointSet is the partition capability used by Kruskal.
type DisjointSet interface {
	// Len returns n, the largest valid id.
	Len() int
	// MakeSet puts v into a singleton set.
	MakeSet(v int) error
	// FindSet returns the root of v's set, or None.
	FindSet(v int) int
	// Union merges the sets rooted at r1 and r2.
	Union(r1, r2 int) error
}

// Sets groups ids 1..ds.Len() by root. Groups are ordered by their smallest
// member and members ascend. Ids never passed to MakeSet are skipped.
func Sets(ds DisjointSet) [][]int {
	n := ds.Len()
	slot := make(map[int]int, n)
	var out [][]int
	for v := 1; v <= n; v++ {
		r := ds.FindSet(v)
		if r == None {
			continue
		}
		i, ok := slot[r]
		if !ok {
			i = len(out)
			slot[r] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], v)
	}

	return out
}

// Factory allocates a DisjointSet able to hold ids 1..n.
type Factory func(n int) (DisjointSet, error)

// ForestFactory is the Factory for the naive Forest.
func ForestFactory(n int) (DisjointSet, error) {
	f, err := NewForest(n)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// CompressedFactory is the Factory for Compressed.
func CompressedFactory(n int) (DisjointSet, error) {
	c, err := NewCompressed(n)
	if err != nil {
		return nil, err
	}

	return c, nil
}
