package varfont

import (
	"fmt"
	"image"

	"github.com/gogpu/varfont/mono"
)

// Font is the capability surface shared by monospaced fonts and the
// variable-width fonts composed on top of them. *mono.Font and
// *VariableFont both implement it, so a VariableFont is a drop-in
// substitute anywhere a fixed-width font is consumed (for example by
// package render).
type Font interface {
	// Glyph returns the glyph image for r. It never fails: characters the
	// font does not cover resolve through the font's fallback glyph.
	Glyph(r rune) mono.Glyph

	// CharacterHeight returns the glyph height in pixels.
	CharacterHeight() int

	// CharacterSpacing returns the fixed gap between characters in pixels.
	CharacterSpacing() int

	// Baseline returns the baseline offset from the top of the cell.
	Baseline() int

	// Strikethrough and Underline return decoration line placement.
	Strikethrough() mono.DecorationDimensions
	Underline() mono.DecorationDimensions

	// MeasureString returns the rendered width of s in pixels, with
	// spacing only between glyphs. The empty string measures 0.
	MeasureString(s string) int
}

var (
	_ Font = (*mono.Font)(nil)
	_ Font = (*VariableFont)(nil)
)

// VariableFont renders variable-width glyphs on top of a monospaced font by
// cropping each fixed-width glyph to the horizontal range selected by a
// GlyphWidthMapping. Typically this skips blank trailing columns of narrow
// glyphs such as punctuation and digits.
//
// A VariableFont is a lightweight, copyable view: it borrows the font and
// the mapping and owns no data itself, so it remains valid only as long as
// both stay valid. All operations are pure queries over immutable inputs
// and safe for concurrent use.
type VariableFont struct {
	mono    *mono.Font
	mapping GlyphWidthMapping
}

// New composes font with mapping. A nil mapping behaves like the native
// cell width, i.e. the composed font renders exactly like the monospaced
// font.
func New(font *mono.Font, mapping GlyphWidthMapping) *VariableFont {
	return &VariableFont{mono: font, mapping: mapping}
}

// Mono returns the underlying monospaced font.
func (f *VariableFont) Mono() *mono.Font { return f.mono }

// glyphWidth resolves the visible range for r.
func (f *VariableFont) glyphWidth(r rune) WidthRange {
	if f.mapping == nil {
		return WidthRange{End: f.mono.CharacterWidth()}
	}
	return f.mapping.GlyphWidth(f.mono, r)
}

// Glyph returns the glyph for r cropped to its mapped width range. The
// result's width equals the range's size (possibly zero); its height always
// equals the native glyph height, cropping never affects the vertical
// extent.
func (f *VariableFont) Glyph(r rune) mono.Glyph {
	g := f.mono.Glyph(r)
	w := f.glyphWidth(r)
	// The crop is Start plus the range size, not End: image.Rect swaps an
	// inverted min/max pair, which would turn an empty range into a
	// visible crop and desync Glyph from MeasureString.
	return g.SubImage(image.Rect(w.Start, 0, w.Start+w.Size(), g.Bounds().Dy()))
}

// CharacterHeight returns the underlying font's glyph height; the width
// mapping has no bearing on vertical metrics.
func (f *VariableFont) CharacterHeight() int { return f.mono.CharacterHeight() }

// CharacterSpacing returns the underlying font's character spacing.
func (f *VariableFont) CharacterSpacing() int { return f.mono.CharacterSpacing() }

// Baseline returns the underlying font's baseline offset.
func (f *VariableFont) Baseline() int { return f.mono.Baseline() }

// Strikethrough returns the underlying font's strikethrough placement.
func (f *VariableFont) Strikethrough() mono.DecorationDimensions { return f.mono.Strikethrough() }

// Underline returns the underlying font's underline placement.
func (f *VariableFont) Underline() mono.DecorationDimensions { return f.mono.Underline() }

// MeasureString returns the rendered width of s: the mapped width of every
// character plus the fixed spacing between adjacent characters. It matches
// exactly the width observed by retrieving each glyph via Glyph and laying
// the glyphs out left to right separated by the font's spacing. The empty
// string measures 0; the result is never negative.
func (f *VariableFont) MeasureString(s string) int {
	w := 0
	for _, r := range s {
		w += f.glyphWidth(r).Size() + f.mono.CharacterSpacing()
	}
	w -= f.mono.CharacterSpacing()
	if w < 0 {
		w = 0
	}
	return w
}

// Equal reports whether two composed fonts are interchangeable: their
// monospaced fonts are equal by value and they use literally the same
// mapping instance. Mappings are deliberately compared by identity, not by
// contents — two distinct mappings compare unequal even if their
// configuration matches, because arbitrary policies have no meaningful
// value equality.
func (f *VariableFont) Equal(o *VariableFont) bool {
	if f == o {
		return true
	}
	if f == nil || o == nil {
		return false
	}
	return f.mono.Equal(o.mono) && sameMapping(f.mapping, o.mapping)
}

// String returns a debug form surfacing the underlying font. The mapping is
// an opaque capability with no guaranteed printable representation, so it
// is redacted.
func (f *VariableFont) String() string {
	return fmt.Sprintf("varfont.VariableFont(%v, mapping ?)", f.mono)
}
