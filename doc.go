// Package varfont renders variable-width glyphs on top of monospaced
// bitmap fonts.
//
// # Overview
//
// A monospaced bitmap font stores every glyph in a cell of identical pixel
// width, and many glyphs (punctuation, digits, narrow letters) do not fill
// their cell. varfont composes such a font with a per-character width
// policy: the policy picks the horizontal pixel range of each cell that is
// actually drawn, and the composed font crops glyphs and measures strings
// accordingly. No pixels are decoded or copied; glyphs stay zero-copy views
// into the font's atlas.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/varfont"
//		"github.com/gogpu/varfont/mono"
//	)
//
//	// widths[i] is the visible width of glyph index i, in pixels.
//	widths := []byte{3, 5, 0, 8}
//
//	font := varfont.New(monoFont, varfont.NewLookupTable(widths))
//	w := font.MeasureString("Hi!")
//	g := font.Glyph('i') // cropped to its table width, full cell height
//
// # Width policies
//
// Any GlyphWidthMapping works as a policy. The built-in LookupTable covers
// the common case of a byte table indexed by glyph index; GlyphWidthFunc
// lets a closure stand in. Package widths derives tables automatically,
// either by scanning a font's own bitmaps for blank trailing columns or
// from the advance metrics of an OpenType font.
//
// # Architecture
//
// The module is organized into:
//   - varfont: the width-mapping contract and the VariableFont composer
//   - mono: monospaced bitmap fonts (atlas, glyph mappings, font sheets)
//   - widths: width lookup-table builders
//   - render: drawing strings onto an image/draw target, with decorations
//   - fontx: adapter to golang.org/x/image/font.Face
//
// # Concurrency
//
// Fonts, mappings, and composed fonts are immutable views over caller-owned
// data. Every operation is a pure query, so concurrent readers need no
// locking.
package varfont

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
