// Package unionfind provides disjoint-set forests over vertex ids 1..n.
//
// Two implementations share the DisjointSet interface:
//
//   - Forest is the plain parent-pointer forest. FindSet walks parent links
//     to the root without modifying them, and Union(r1, r2) always hangs r2
//     under r1. Tree shape is therefore fully determined by the call sequence.
//   - Compressed adds path compression to FindSet and union by size to Union.
//     Union may hang r1 under r2, so tree shapes differ from Forest even
//     though the resulting partition is the same.
//
// Both are iterative; no call ever recurses on tree depth.
//
// Union expects roots. Passing a vertex that is not a root returns ErrNotRoot
// instead of corrupting the forest.
//
// Complexity:
//
//   - Forest:     MakeSet O(1), FindSet O(depth) with depth up to n-1, Union O(1).
//   - Compressed: amortised O(α(n)) per FindSet and Union.
package unionfind
