// Package format renders graphs and algorithm results as plain text.
//
// Vertices are shown with a LabelFn, by default Label: 1→"A" ... 26→"Z",
// and core.NoVertex (0) as "@". Beyond 26 labels continue as spreadsheet
// columns ("AA", "AB", ...), so they stay distinct; use Decimal for raw ids.
//
// A Printer wraps an io.Writer and remembers the first write error:
//
//	p := format.New(os.Stdout)
//	p.ParentArray(res.Parent)
//	p.Weight("MST", res.Weight)
//	if err := p.Err(); err != nil { ... }
package format
