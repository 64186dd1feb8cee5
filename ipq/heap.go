package ipq

import "fmt"

// IndexedHeap is a binary min-heap of ids in [1, capacity] ordered by borrowed Keys.
// The zero value is not usable; construct with New or Heapify.
type IndexedHeap struct {
	a    []int // a[1..n] in heap order; a[0] == Sentinel
	pos  []int // pos[id] == index of id in a, 0 when absent
	n    int   // current size
	keys Keys  // borrowed ordering; never copied
}

// New returns an empty heap able to hold ids 1..capacity.
// The capacity is fixed; the heap never grows.
//
// Complexity: O(capacity) time and memory.
func New(capacity int, keys Keys) (*IndexedHeap, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	if keys == nil {
		return nil, ErrNilKeys
	}

	return &IndexedHeap{
		a:    make([]int, capacity+1),
		pos:  make([]int, capacity+1),
		keys: keys,
	}, nil
}

// Heapify returns a heap that already contains every id 1..capacity,
// built bottom-up: ids are laid out in order and sift-down is applied to
// each internal node from capacity/2 down to 1.
//
// Complexity: O(capacity) time and memory.
func Heapify(capacity int, keys Keys) (*IndexedHeap, error) {
	h, err := New(capacity, keys)
	if err != nil {
		return nil, err
	}
	for id := 1; id <= capacity; id++ {
		h.a[id] = id
		h.pos[id] = id
	}
	h.n = capacity
	for k := h.n / 2; k > 0; k-- {
		h.siftDown(k)
	}

	return h, nil
}

// IsEmpty reports whether the heap holds no ids.
func (h *IndexedHeap) IsEmpty() bool { return h.n == 0 }

// Len returns the number of queued ids.
func (h *IndexedHeap) Len() int { return h.n }

// Cap returns the fixed capacity.
func (h *IndexedHeap) Cap() int { return len(h.a) - 1 }

// Contains reports whether id is currently queued.
func (h *IndexedHeap) Contains(id int) bool {
	return id > Sentinel && id < len(h.pos) && h.pos[id] != 0
}

// Pos returns the heap index of id, or 0 when id is not queued.
func (h *IndexedHeap) Pos(id int) int {
	if id <= Sentinel || id >= len(h.pos) {
		return 0
	}

	return h.pos[id]
}

// Insert appends id at the next free slot and sifts it up.
//
// Errors: ErrIDOutOfRange, ErrOverflow, ErrDuplicate. On error the heap is unchanged.
// Complexity: O(log n).
func (h *IndexedHeap) Insert(id int) error {
	if id <= Sentinel || id >= len(h.pos) {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrIDOutOfRange, id, h.Cap())
	}
	if h.n == h.Cap() {
		return fmt.Errorf("%w: capacity %d", ErrOverflow, h.Cap())
	}
	if h.pos[id] != 0 {
		return fmt.Errorf("%w: %d at index %d", ErrDuplicate, id, h.pos[id])
	}
	h.n++
	h.a[h.n] = id
	h.siftUp(h.n)

	return nil
}

// ExtractMin removes and returns the id with the smallest key.
// The last slot moves to the root and is sifted down; the extracted id's
// position is reset to 0. On an empty heap it returns Sentinel.
//
// Complexity: O(log n).
func (h *IndexedHeap) ExtractMin() int {
	if h.n == 0 {
		return Sentinel
	}
	top := h.a[1]
	h.pos[top] = 0

	last := h.a[h.n]
	h.a[h.n] = Sentinel
	h.n--
	if h.n > 0 {
		h.a[1] = last
		h.siftDown(1)
	}

	return top
}

// Decreased restores heap order after the caller lowered the key of a queued id.
// It sifts the id up from its current position.
//
// Errors: ErrIDOutOfRange, ErrNotQueued.
// Complexity: O(log n).
func (h *IndexedHeap) Decreased(id int) error {
	if id <= Sentinel || id >= len(h.pos) {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrIDOutOfRange, id, h.Cap())
	}
	if h.pos[id] == 0 {
		return fmt.Errorf("%w: %d", ErrNotQueued, id)
	}
	h.siftUp(h.pos[id])

	return nil
}

// Snapshot returns a copy of a[1..n], the ids in heap-array order.
func (h *IndexedHeap) Snapshot() []int {
	out := make([]int, h.n)
	copy(out, h.a[1:h.n+1])

	return out
}

// siftUp moves the id at index k towards the root while its key is smaller
// than its parent's. a[0] is Sentinel, so the loop always stops at k == 1.
func (h *IndexedHeap) siftUp(k int) {
	id := h.a[k]
	for h.keys.Less(id, h.a[k/2]) {
		h.a[k] = h.a[k/2]
		h.pos[h.a[k]] = k
		k /= 2
	}
	h.a[k] = id
	h.pos[id] = k
}

// siftDown moves the id at index k towards the leaves, swapping with the
// smaller child while that child's key is smaller.
func (h *IndexedHeap) siftDown(k int) {
	id := h.a[k]
	for k <= h.n/2 {
		j := 2 * k
		if j < h.n && h.keys.Less(h.a[j+1], h.a[j]) {
			j++
		}
		if !h.keys.Less(h.a[j], id) {
			break
		}
		h.a[k] = h.a[j]
		h.pos[h.a[k]] = k
		k = j
	}
	h.a[k] = id
	h.pos[id] = k
}
