// Package ipq implements an indexed binary min-heap over integer identifiers
// with O(log n) decrease-key.
//
// What & Why
//
//	Prim's and Dijkstra's algorithms repeatedly lower the priority of a vertex
//	that is already queued. A plain container/heap cannot find that vertex
//	without a scan; IndexedHeap keeps a position array pos[id] alongside the
//	heap array, so the element can be sifted up from where it sits.
//
// Ownership model
//
//	The heap never stores priorities. It borrows a Keys capability from the
//	caller (typically the algorithm's dist slice wrapped as Slice[int64]) and
//	only reads it. The caller owns the keys and may lower key[id] at any time,
//	but must then call Decreased(id) before the next heap operation. Raising a
//	key of a queued id is not supported.
//
// Layout
//
//	a[1..n]  heap array of ids, a[0] == Sentinel.
//	pos[id]  index of id in a, or 0 when id is not queued.
//
//	Id 0 (Sentinel) is a permanent -infinity guard: Keys.Less(x, Sentinel)
//	is false for every x, so sift-up stops at the root with no bounds test.
//
// Invariants after every operation:
//
//	pos[a[k]] == k                      for 1 ≤ k ≤ n
//	!Less(a[2k], a[k]), !Less(a[2k+1], a[k])   where the children exist
//
// Errors:
//
//	ErrBadCapacity   – New/Heapify with capacity < 0.
//	ErrNilKeys       – New/Heapify without a Keys implementation.
//	ErrIDOutOfRange  – id outside [1, capacity].
//	ErrOverflow      – Insert on a full heap.
//	ErrDuplicate     – Insert of an id already queued.
//	ErrNotQueued     – Decreased for an id not queued.
//
//	ExtractMin on an empty heap is a contract violation; it returns Sentinel
//	and leaves the heap untouched. Check IsEmpty first.
//
// Complexity:
//
//	Insert, ExtractMin, Decreased: O(log n).  IsEmpty, Len, Contains: O(1).
//	Heapify (bottom-up construction): O(n).
package ipq
