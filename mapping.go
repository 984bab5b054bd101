package varfont

import (
	"reflect"

	"github.com/gogpu/varfont/mono"
)

// WidthRange is a half-open interval [Start, End) of horizontal pixel
// offsets within a glyph's native cell. 0 is the left edge of the cell as
// produced by the monospaced font, not a screen coordinate. A range with
// End <= Start denotes zero visible width.
type WidthRange struct {
	Start, End int
}

// Size returns the number of pixels covered by the range, never negative.
func (r WidthRange) Size() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether the range covers no pixels.
func (r WidthRange) Empty() bool { return r.End <= r.Start }

// GlyphWidthMapping decides which horizontal sub-range of a glyph's cell is
// actually drawn. Implementations must be pure: the same font and character
// always yield the same range, and a query never mutates the mapping.
//
// The font parameter lets mappings depend on font metadata such as the
// native cell width or the font's own glyph indexing. Implementations
// should keep End within the font's cell width; the composer does not
// enforce this, a wider range is a caller error.
type GlyphWidthMapping interface {
	GlyphWidth(font *mono.Font, r rune) WidthRange
}

// GlyphWidthFunc adapts an ordinary function to a GlyphWidthMapping, so
// simple closures can stand in for a named policy type.
type GlyphWidthFunc func(font *mono.Font, r rune) WidthRange

// GlyphWidth implements GlyphWidthMapping.
func (f GlyphWidthFunc) GlyphWidth(font *mono.Font, r rune) WidthRange {
	return f(font, r)
}

// LookupTable is an allocation-free GlyphWidthMapping backed by a byte
// table indexed by the font's own glyph index (not the character code).
// Entry values are glyph widths in pixels, interpreted as the range
// [0, entry): only trailing columns of a cell can be skipped, and widths
// are limited to 255 pixels. An entry of 0 is valid and yields an invisible
// glyph (useful for combining characters).
//
// Glyph indices at or beyond the table length resolve to the default width
// when one is configured, otherwise to the font's native cell width.
type LookupTable struct {
	table        []byte
	defaultWidth int
	hasDefault   bool
}

// NewLookupTable creates a LookupTable without a default width:
// out-of-table glyphs fall back to the font's native cell width.
// The table is not copied and must not be modified afterwards.
func NewLookupTable(table []byte) *LookupTable {
	return &LookupTable{table: table}
}

// NewLookupTableWithDefault creates a LookupTable whose out-of-table
// glyphs resolve to defaultWidth pixels. A default wider than the font's
// cell is not validated here and will produce ranges the composer cannot
// satisfy; keep it within the cell width.
func NewLookupTableWithDefault(table []byte, defaultWidth int) *LookupTable {
	return &LookupTable{table: table, defaultWidth: defaultWidth, hasDefault: true}
}

// GlyphWidth implements GlyphWidthMapping. It cannot fail: absent entries
// always resolve through the default or the font's cell width.
func (t *LookupTable) GlyphWidth(font *mono.Font, r rune) WidthRange {
	if i := font.Index(r); i < len(t.table) {
		return WidthRange{End: int(t.table[i])}
	}
	if t.hasDefault {
		return WidthRange{End: t.defaultWidth}
	}
	return WidthRange{End: font.CharacterWidth()}
}

// sameMapping reports whether a and b are the same mapping instance.
// Width policies may be arbitrary closures without a meaningful value
// equality, so composers compare them by identity: pointer-shaped mappings
// (everything this package constructs) compare by address, function
// adapters by code pointer (distinct closures over one function body share
// it). Remaining comparable kinds fall back to Go equality.
func sameMapping(a, b GlyphWidthMapping) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	default:
		return va.Type().Comparable() && a == b
	}
}
