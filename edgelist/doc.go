// Package edgelist reads and writes the plain-text edge-list format.
//
// Format:
//
//	V E
//	u1 v1 w1
//	...
//	uE vE wE
//
// Fields are integers separated by any run of spaces or tabs. Blank lines
// are ignored anywhere. Vertices are 1-based and weights non-negative.
//
// Parse reports every malformed edge line at once in a
// *multierror.Error; callers test for a category with errors.Is
// (ErrBadEdge, ErrMissingEdges, core.ErrVertexOutOfRange,
// core.ErrNegativeWeight). No graph is returned when any line fails.
package edgelist
