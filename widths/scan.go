// Package widths builds glyph width lookup tables for varfont.LookupTable,
// either by scanning a monospaced font's own bitmaps for blank trailing
// columns or by deriving widths from the advance metrics of an OpenType
// font.
package widths

import (
	"github.com/gogpu/varfont/mono"
)

// Scan derives a width table from the font's own glyph bitmaps: entry i is
// one past the rightmost set pixel column of glyph cell i, so rendering
// through the table skips every fully blank trailing column. Blank cells
// (such as the space glyph) get width 0; pad such entries afterwards if a
// visible advance is wanted.
//
// Only trailing columns are truncated; blank leading columns are part of
// the glyph's design and are preserved.
func Scan(f *mono.Font, n int) []byte {
	table := make([]byte, n)
	w, h := f.CharacterWidth(), f.CharacterHeight()
	for i := range table {
		g := f.GlyphAt(i)
		width := 0
		for y := 0; y < h; y++ {
			for x := w - 1; x >= width; x-- {
				if g.AlphaAt(x, y).A != 0 {
					width = x + 1
					break
				}
			}
		}
		if width > 0xff {
			width = 0xff
		}
		table[i] = byte(width)
	}
	return table
}
