package ipq

import (
	"cmp"
	"errors"
)

// Sentinel is the reserved identifier stored in a[0] and returned by
// ExtractMin on an empty heap. It orders below every real id.
const Sentinel = 0

// Sentinel errors for heap operations.
var (
	// ErrBadCapacity indicates a negative capacity.
	ErrBadCapacity = errors.New("ipq: capacity must be non-negative")

	// ErrNilKeys indicates that no Keys implementation was supplied.
	ErrNilKeys = errors.New("ipq: keys are nil")

	// ErrIDOutOfRange indicates an id outside [1, capacity].
	ErrIDOutOfRange = errors.New("ipq: id out of range")

	// ErrOverflow indicates an Insert into a heap that already holds capacity ids.
	ErrOverflow = errors.New("ipq: heap overflow")

	// ErrDuplicate indicates an Insert of an id that is already queued.
	ErrDuplicate = errors.New("ipq: id already queued")

	// ErrNotQueued indicates Decreased was called for an id that is not queued.
	ErrNotQueued = errors.New("ipq: id not queued")
)

// Keys is the ordering capability borrowed by an IndexedHeap.
//
// Less reports whether the key of id i is strictly smaller than the key of id j.
// Implementations must treat Sentinel as -infinity: Less(x, Sentinel) is false
// for every x, and Less(Sentinel, x) is true for every real id x.
type Keys interface {
	Less(i, j int) bool
}

// Slice adapts a caller-owned key slice indexed by id. The conversion
// Slice[int64](dist) shares dist's backing array, so later writes by the
// caller are observed by the heap.
type Slice[K cmp.Ordered] []K

// Less implements Keys with Sentinel as -infinity.
func (s Slice[K]) Less(i, j int) bool {
	if j == Sentinel {
		return false
	}
	if i == Sentinel {
		return true
	}

	return s[i] < s[j]
}

// Func adapts a key lookup function, e.g. edge index → edge weight.
type Func[K cmp.Ordered] func(id int) K

// Less implements Keys with Sentinel as -infinity.
func (f Func[K]) Less(i, j int) bool {
	if j == Sentinel {
		return false
	}
	if i == Sentinel {
		return true
	}

	return f(i) < f(j)
}
