package mono

import (
	"bytes"
	"fmt"
	"image"
)

// DecorationDimensions describes the placement of a horizontal decoration
// line (underline or strikethrough) relative to the top of the character
// cell.
type DecorationDimensions struct {
	// Offset is the number of pixel rows between the top of the cell and
	// the first row of the decoration.
	Offset int

	// Height is the thickness of the decoration in pixel rows.
	Height int
}

// Config holds everything needed to construct a Font. Fonts are typically
// declared as package-level variables over static atlas data.
type Config struct {
	// Atlas is the glyph atlas: 1 bit per pixel, MSB first, rows of
	// AtlasWidth pixels. Glyph cells are laid out in a row-major grid.
	// The slice is not copied and must not be modified afterwards.
	Atlas []byte

	// AtlasWidth is the atlas width in pixels. It must be at least
	// CellSize.X; any remainder after dividing by CellSize.X is unused
	// padding at the end of each cell row.
	AtlasWidth int

	// CellSize is the fixed per-glyph cell size in pixels.
	CellSize image.Point

	// Spacing is the fixed gap between adjacent characters in pixels.
	Spacing int

	// Baseline is the number of pixel rows between the top of the cell and
	// the text baseline.
	Baseline int

	// Strikethrough and Underline position the decoration lines.
	Strikethrough DecorationDimensions
	Underline     DecorationDimensions

	// Mapping resolves characters to glyph indices.
	Mapping GlyphMapping
}

// Font is an immutable monospaced bitmap font: every glyph occupies a cell
// of identical pixel size inside a shared 1bpp atlas.
//
// A Font is a view over caller-owned data. It never mutates after
// construction, so a single instance may be queried concurrently without
// locking.
type Font struct {
	atlas      []byte
	atlasWidth int
	cellSize   image.Point
	spacing    int
	baseline   int
	strike     DecorationDimensions
	underline  DecorationDimensions
	mapping    GlyphMapping

	// columns is the number of glyph cells per atlas row.
	columns int
}

// New validates cfg and creates a Font.
func New(cfg Config) (*Font, error) {
	if len(cfg.Atlas) == 0 {
		return nil, ErrNoAtlas
	}
	if cfg.CellSize.X <= 0 || cfg.CellSize.Y <= 0 {
		return nil, fmt.Errorf("%w: cell size %dx%d", ErrBadGeometry, cfg.CellSize.X, cfg.CellSize.Y)
	}
	if cfg.AtlasWidth < cfg.CellSize.X {
		return nil, fmt.Errorf("%w: atlas width %d < cell width %d", ErrBadGeometry, cfg.AtlasWidth, cfg.CellSize.X)
	}
	if cfg.Mapping == nil {
		return nil, ErrNoMapping
	}
	return &Font{
		atlas:      cfg.Atlas,
		atlasWidth: cfg.AtlasWidth,
		cellSize:   cfg.CellSize,
		spacing:    cfg.Spacing,
		baseline:   cfg.Baseline,
		strike:     cfg.Strikethrough,
		underline:  cfg.Underline,
		mapping:    cfg.Mapping,
		columns:    cfg.AtlasWidth / cfg.CellSize.X,
	}, nil
}

// Index resolves a character to its glyph index via the font's mapping.
func (f *Font) Index(r rune) int { return f.mapping.Index(r) }

// CharacterWidth returns the native cell width in pixels.
func (f *Font) CharacterWidth() int { return f.cellSize.X }

// CharacterHeight returns the native cell height in pixels.
func (f *Font) CharacterHeight() int { return f.cellSize.Y }

// CharacterSpacing returns the fixed gap between characters in pixels.
func (f *Font) CharacterSpacing() int { return f.spacing }

// Baseline returns the baseline offset from the top of the cell.
func (f *Font) Baseline() int { return f.baseline }

// Strikethrough returns the strikethrough decoration placement.
func (f *Font) Strikethrough() DecorationDimensions { return f.strike }

// Underline returns the underline decoration placement.
func (f *Font) Underline() DecorationDimensions { return f.underline }

// Glyph returns the full fixed-width glyph for r. Every returned glyph has
// the font's cell size; characters the mapping does not cover resolve to its
// fallback cell. The call never fails and never allocates.
func (f *Font) Glyph(r rune) Glyph {
	return f.GlyphAt(f.Index(r))
}

// GlyphAt returns the glyph cell at the given glyph index. Indices beyond
// the atlas yield a blank cell of the native size: the view's bits fall past
// the end of the atlas and read as off.
func (f *Font) GlyphAt(index int) Glyph {
	if index < 0 {
		index = 0
	}
	return Glyph{
		pix:    f.atlas,
		stride: f.atlasWidth,
		offset: image.Point{
			X: (index % f.columns) * f.cellSize.X,
			Y: (index / f.columns) * f.cellSize.Y,
		},
		size: f.cellSize,
	}
}

// MeasureString returns the rendered width of s in pixels: one cell width
// per character plus the fixed spacing between adjacent characters. The
// empty string measures 0.
func (f *Font) MeasureString(s string) int {
	w := 0
	for range s {
		w += f.cellSize.X + f.spacing
	}
	w -= f.spacing
	if w < 0 {
		w = 0
	}
	return w
}

// Equal reports whether two fonts are equal by value: same geometry, same
// metrics, same atlas contents, and the same glyph mapping instance.
func (f *Font) Equal(o *Font) bool {
	if f == o {
		return true
	}
	if f == nil || o == nil {
		return false
	}
	return f.atlasWidth == o.atlasWidth &&
		f.cellSize == o.cellSize &&
		f.spacing == o.spacing &&
		f.baseline == o.baseline &&
		f.strike == o.strike &&
		f.underline == o.underline &&
		sameMapping(f.mapping, o.mapping) &&
		bytes.Equal(f.atlas, o.atlas)
}

// String returns a short debug form of the font.
func (f *Font) String() string {
	return fmt.Sprintf("mono.Font(%dx%d, spacing %d, baseline %d)",
		f.cellSize.X, f.cellSize.Y, f.spacing, f.baseline)
}
