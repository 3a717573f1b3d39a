package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// emptyCell is written by Clear; a zero rune flushes as a space
var emptyCell = Cell{Rune: 0, Style: StyleBackground}
