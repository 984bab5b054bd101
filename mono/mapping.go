package mono

import (
	"reflect"

	"golang.org/x/text/encoding/charmap"
)

// GlyphMapping resolves a character to its glyph index within a font's
// atlas. Implementations must be total: a rune the font does not cover maps
// to a fallback index (typically a replacement glyph), never an error.
// Returned indices must be non-negative and deterministic for a given rune.
type GlyphMapping interface {
	Index(r rune) int
}

// GlyphMappingFunc adapts an ordinary function to a GlyphMapping.
type GlyphMappingFunc func(r rune) int

// Index implements GlyphMapping.
func (f GlyphMappingFunc) Index(r rune) int { return f(r) }

// RuneRange is an inclusive range of runes mapped to consecutive glyph
// indices.
type RuneRange struct {
	First, Last rune
}

// RangeMapping maps ordered, non-overlapping rune ranges to contiguous glyph
// indices: the first range starts at index 0, each following range continues
// where the previous one ended. Runes outside every range resolve to the
// fallback index.
type RangeMapping struct {
	ranges   []RuneRange
	fallback int
}

// NewRangeMapping creates a RangeMapping. The ranges slice is not copied and
// must not be modified afterwards.
func NewRangeMapping(ranges []RuneRange, fallback int) *RangeMapping {
	return &RangeMapping{ranges: ranges, fallback: fallback}
}

// Index implements GlyphMapping.
func (m *RangeMapping) Index(r rune) int {
	base := 0
	for _, rr := range m.ranges {
		if r >= rr.First && r <= rr.Last {
			return base + int(r-rr.First)
		}
		base += int(rr.Last-rr.First) + 1
	}
	return m.fallback
}

// CharmapMapping resolves glyph indices through a legacy code page from
// golang.org/x/text/encoding/charmap. The glyph index is the rune's encoded
// byte minus the first covered byte, so an atlas only needs cells for the
// code points it actually provides (commonly 0x20 and up).
type CharmapMapping struct {
	cm       *charmap.Charmap
	first    byte
	fallback int
}

// NewCharmapMapping creates a mapping backed by cm. first is the code-page
// byte of the atlas's first glyph cell; runes that do not encode in cm, or
// that encode below first, resolve to fallback.
func NewCharmapMapping(cm *charmap.Charmap, first byte, fallback int) *CharmapMapping {
	return &CharmapMapping{cm: cm, first: first, fallback: fallback}
}

// Index implements GlyphMapping.
func (m *CharmapMapping) Index(r rune) int {
	b, ok := m.cm.EncodeRune(r)
	if !ok || b < m.first {
		return m.fallback
	}
	return int(b - m.first)
}

// IndexMapping maps runes to glyph indices through an explicit table.
// It is what the glyph-sheet decoder produces, since sheets may declare
// glyphs for arbitrary, non-contiguous runes.
type IndexMapping struct {
	index    map[rune]int
	fallback int
}

// NewIndexMapping creates an IndexMapping. The map is not copied and must
// not be modified afterwards.
func NewIndexMapping(index map[rune]int, fallback int) *IndexMapping {
	return &IndexMapping{index: index, fallback: fallback}
}

// Index implements GlyphMapping.
func (m *IndexMapping) Index(r rune) int {
	if i, ok := m.index[r]; ok {
		return i
	}
	return m.fallback
}

// sameMapping reports whether a and b are the same mapping instance.
// Mappings are opaque policies without a useful value-equality notion, so
// fonts compare them by identity: pointer-shaped mappings (everything this
// package constructs) compare by address, function adapters by code pointer
// (distinct closures over one function body share it). Remaining comparable
// kinds fall back to Go equality.
func sameMapping(a, b GlyphMapping) bool {
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
