package puzzle

import "strings"

const columnGap = "  "

// Render draws the stools as fixed-width text, top level first, followed by a
// baseline. Every column is wide enough for the largest disc in the game.
func (m *Model) Render() string {
	largest, rows := m.discs, 0
	for _, s := range m.stools {
		rows = max(rows, len(s))
		for _, d := range s {
			largest = max(largest, d.Size())
		}
	}
	largest = max(largest, 0)
	rows = max(rows, largest)
	width := 2*largest + 1

	var b strings.Builder
	for h := rows - 1; h >= 0; h-- {
		for i := range m.stools {
			if i > 0 {
				b.WriteString(columnGap)
			}
			size := 0
			if d, ok := m.DiscAt(i, h); ok {
				size = d.Size()
			}
			b.WriteString(discCell(size, width))
		}
		b.WriteByte('\n')
	}
	for i := range m.stools {
		if i > 0 {
			b.WriteString(columnGap)
		}
		b.WriteString(strings.Repeat("=", width))
	}
	return b.String()
}

// discCell centres a disc of 2*size-1 dashes in a cell of the given width.
func discCell(size, width int) string {
	if size <= 0 {
		return strings.Repeat(" ", width)
	}
	glyph := 2*size - 1
	pad := (width - glyph) / 2
	return strings.Repeat(" ", pad) + strings.Repeat("-", glyph) + strings.Repeat(" ", width-glyph-pad)
}
