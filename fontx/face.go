// Package fontx adapts varfont fonts to golang.org/x/image/font.Face, so
// monospaced and variable-width bitmap fonts plug into font.Drawer and the
// rest of the x/image text stack.
package fontx

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/varfont"
)

// face adapts a varfont.Font to font.Face.
type face struct {
	f varfont.Font
}

// NewFace wraps f as a font.Face.
//
// The advance reported for every glyph includes the font's fixed character
// spacing, and Kern always returns 0: bitmap fonts here have no pair
// kerning, only a constant gap between characters. Measuring a string
// through font.MeasureString therefore exceeds f.MeasureString by exactly
// one trailing spacing.
func NewFace(f varfont.Font) font.Face {
	return &face{f: f}
}

// Close implements font.Face. It is a no-op: varfont fonts hold no
// resources beyond caller-owned memory.
func (a *face) Close() error { return nil }

// Metrics implements font.Face. Bitmap fonts carry no x-height or
// cap-height of their own, so XHeight and CapHeight are approximated by
// the ascent (the full cell above the baseline); consumers that center
// text on CapHeight see the whole cell as cap height.
func (a *face) Metrics() font.Metrics {
	h := a.f.CharacterHeight()
	b := a.f.Baseline()
	return font.Metrics{
		Height:     fixed.I(h),
		Ascent:     fixed.I(b),
		Descent:    fixed.I(h - b),
		XHeight:    fixed.I(b),
		CapHeight:  fixed.I(b),
		CaretSlope: image.Pt(0, 1),
	}
}

// Kern implements font.Face. Fixed inter-character spacing is folded into
// the advance instead, so kerning is always zero.
func (a *face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// advance returns the advance for r in pixels.
func (a *face) advance(r rune) int {
	return a.f.Glyph(r).Bounds().Dx() + a.f.CharacterSpacing()
}

// Glyph implements font.Face. ok is always true: varfont fonts resolve
// every rune through their fallback glyph.
func (a *face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	g := a.f.Glyph(r)
	b := g.Bounds()
	x := dot.X.Floor()
	top := dot.Y.Floor() - a.f.Baseline()
	dr = image.Rect(x, top, x+b.Dx(), top+b.Dy())
	return dr, g, image.Point{}, fixed.I(a.advance(r)), true
}

// GlyphBounds implements font.Face.
func (a *face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	b := a.f.Glyph(r).Bounds()
	baseline := a.f.Baseline()
	bounds = fixed.R(0, -baseline, b.Dx(), b.Dy()-baseline)
	return bounds, fixed.I(a.advance(r)), true
}

// GlyphAdvance implements font.Face.
func (a *face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	return fixed.I(a.advance(r)), true
}
