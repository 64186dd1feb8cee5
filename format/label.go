package format

import "strconv"

// LabelFn renders a vertex id. It must be pure: same id, same label.
type LabelFn func(v int) string

// Label maps 1..26 to 'A'..'Z' and core.NoVertex to "@" (the character
// before 'A'). Ids above 26 continue Excel-style: 27→"AA", 28→"AB", ...
// Negative ids are printed in decimal.
func Label(v int) string {
	switch {
	case v < 0:
		return strconv.Itoa(v)
	case v <= 26:
		return string(rune('@' + v))
	default:
		return excelColumn(v - 1)
	}
}

// Decimal renders the id itself.
func Decimal(v int) string {
	return strconv.Itoa(v)
}

// excelColumn returns the column name for a zero-based index: 0→"A", 25→"Z", 26→"AA".
func excelColumn(idx int) string {
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
