package term

import "github.com/rivo/uniseg"

// Cell is a single character cell in the screen grid. Style (color,
// attributes) is intentionally not modeled: the capture pipeline only
// ever needs the plain text content of a cell.
type Cell struct {
	Rune  rune
	Width int // display width, 1 for normal runes, 2 for wide runes, 0 for trailing wide-rune filler
}

// EmptyCell returns a blank cell.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}

// runeWidth returns the display width of r using grapheme-aware East
// Asian width rules.
func runeWidth(r rune) int {
	if r == 0 {
		return 1
	}
	w := uniseg.StringWidth(string(r))
	if w <= 0 {
		return 1
	}
	return w
}
