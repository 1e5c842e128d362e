package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/boxname"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/charset"
)

const (
	// PasteColumns is the number of character cells shown per name.
	PasteColumns = boxname.SlotSize - 1
	// VisibleSpace stands in for a space inside a name.
	VisibleSpace = "␣"
)

// Width condition independent of the terminal locale.
var cellCondition = &runewidth.Condition{EastAsianWidth: false}

// FormatPasteLine renders one box as
//
//	Box NN:<TAB>c h a r s<TAB>[name]
//
// Each character gets its own cell, spaces are shown as ␣ and short names
// are padded with the language's space up to PasteColumns cells. Cells are
// padded to the display width of the language so wide and narrow glyphs
// line up.
func FormatPasteLine(number int, name string, l charset.Language) string {
	space := " "
	cellWidth := 1
	if l.IsJapanese() {
		space = "\u3000"
		cellWidth = 2
	}

	cells := make([]string, 0, PasteColumns)
	for _, c := range name {
		cell := string(c)
		if cell == space {
			cell = VisibleSpace
		}
		cells = append(cells, cellCondition.FillRight(cell, cellWidth))
	}
	for len(cells) < PasteColumns {
		cells = append(cells, cellCondition.FillRight(space, cellWidth))
	}

	return fmt.Sprintf("Box %2d:\t%s\t[%s]", number, strings.Join(cells, " "), name)
}

// FormatPaste renders all boxes, numbered from 1.
func FormatPaste(names [boxname.SlotCount]string, l charset.Language) string {
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = FormatPasteLine(i+1, name, l)
	}
	return strings.Join(lines, "\n")
}
