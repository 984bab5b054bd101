package mono

import (
	"image"
	"image/color"
)

// Glyph is a read-only 1bpp view into a font's glyph atlas.
// It implements image.Image: on-bits are fully opaque alpha, off-bits are
// transparent. A Glyph never copies pixel data; it only narrows the visible
// region, so creating and cropping glyphs is allocation-free.
//
// The zero Glyph is an empty image.
type Glyph struct {
	// pix holds the atlas bits, MSB first within each byte.
	pix []byte

	// stride is the atlas width in pixels (bits per atlas row).
	stride int

	// offset is the atlas position of the glyph's local origin.
	offset image.Point

	// size is the visible extent in pixels.
	size image.Point
}

// ColorModel implements image.Image.
func (g Glyph) ColorModel() color.Model { return color.AlphaModel }

// Bounds implements image.Image. The returned rectangle is always anchored
// at the origin: (0,0)-(w,h).
func (g Glyph) Bounds() image.Rectangle { return image.Rectangle{Max: g.size} }

// At implements image.Image. Coordinates outside Bounds, and bits beyond the
// end of the atlas, read as transparent.
func (g Glyph) At(x, y int) color.Color {
	return g.AlphaAt(x, y)
}

// AlphaAt returns the alpha value at (x, y) without boxing it in a
// color.Color interface.
func (g Glyph) AlphaAt(x, y int) color.Alpha {
	if x < 0 || y < 0 || x >= g.size.X || y >= g.size.Y {
		return color.Alpha{}
	}
	bit := (g.offset.Y+y)*g.stride + g.offset.X + x
	i := bit / 8
	if i < 0 || i >= len(g.pix) {
		return color.Alpha{}
	}
	if g.pix[i]&(0x80>>uint(bit%8)) != 0 {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

// SubImage returns the glyph restricted to r, expressed in the glyph's own
// coordinate space. The result is anchored at the origin again, so chained
// crops compose. The rectangle is clamped to the glyph bounds per axis:
// a rectangle that is empty on one axis keeps its extent on the other, so
// cropping to a zero-width column of full height yields a glyph of width 0
// and unchanged height.
func (g Glyph) SubImage(r image.Rectangle) Glyph {
	r = r.Canon()
	r.Min.X = clamp(r.Min.X, 0, g.size.X)
	r.Min.Y = clamp(r.Min.Y, 0, g.size.Y)
	r.Max.X = clamp(r.Max.X, r.Min.X, g.size.X)
	r.Max.Y = clamp(r.Max.Y, r.Min.Y, g.size.Y)
	return Glyph{
		pix:    g.pix,
		stride: g.stride,
		offset: g.offset.Add(r.Min),
		size:   r.Size(),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
