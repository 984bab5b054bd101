package widths

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/varfont"
	"github.com/gogpu/varfont/cache"
)

// Sentinel errors for OpenType width derivation.
var (
	// ErrEmptyFont is returned when the font data is empty.
	ErrEmptyFont = errors.New("widths: empty font data")

	// ErrBadGeometry is returned for non-positive cell or ppem values.
	ErrBadGeometry = errors.New("widths: invalid target geometry")
)

// Geometry describes the monospaced bitmap font a derived table targets.
type Geometry struct {
	// CellWidth is the native glyph cell width in pixels. Derived widths
	// are capped at this value.
	CellWidth int

	// PPEM is the pixel em the bitmap font was drawn at, i.e. the scale at
	// which one em of the OpenType font corresponds to PPEM pixels.
	PPEM int
}

// fontKey identifies parsed font data. The precomputed hash selects the
// cache shard; the pointer and length make the key unique per allocation,
// so a hash collision can never return the wrong font.
type fontKey struct {
	hash  uint64
	first *byte
	n     int
}

// parsed caches font.Font objects, which are read-only and safe to share
// across goroutines (faces are created per call, they are not).
var parsed = cache.New[fontKey, *font.Font](cache.DefaultCapacity, func(k fontKey) uint64 {
	return k.hash
})

// FromOpenType derives a width lookup table from the horizontal advance
// metrics of an OpenType/TrueType font, for a bitmap font rasterized from
// it at geom.PPEM pixels per em. The table has n entries; runeOf maps each
// glyph index of the target bitmap font to the character stored in that
// cell (for a font mapped over Latin-1 starting at space, that is
// func(i int) rune { return rune(0x20 + i) }).
//
// Advances are rounded to whole pixels and capped at geom.CellWidth, since
// a width table can only truncate trailing columns, never widen a cell.
// Characters the OpenType font has no glyph for fall back to the full cell
// width. The data slice must not be modified afterwards; parsed fonts are
// cached so repeated derivations from the same data skip re-parsing.
func FromOpenType(data []byte, geom Geometry, n int, runeOf func(index int) rune) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFont
	}
	if geom.CellWidth <= 0 || geom.PPEM <= 0 {
		return nil, fmt.Errorf("%w: cell width %d, ppem %d", ErrBadGeometry, geom.CellWidth, geom.PPEM)
	}

	fnt, err := parsedFont(data)
	if err != nil {
		return nil, err
	}
	// font.Face carries per-face caches and is not safe for concurrent
	// use, so each derivation gets its own.
	face := font.NewFace(fnt)
	upem := float64(face.Upem())

	maxWidth := geom.CellWidth
	if maxWidth > 0xff {
		maxWidth = 0xff
	}

	log := varfont.Logger()
	table := make([]byte, n)
	clamped := 0
	for i := range table {
		r := runeOf(i)
		gid, ok := face.NominalGlyph(r)
		if !ok {
			// No outline for this character; keep the full cell so the
			// bitmap glyph (often a replacement box) stays intact.
			table[i] = byte(maxWidth)
			continue
		}
		px := int(math.Round(float64(face.HorizontalAdvance(gid)) * float64(geom.PPEM) / upem))
		if px < 0 {
			px = 0
		}
		if px > maxWidth {
			px = maxWidth
			clamped++
		}
		table[i] = byte(px)
	}
	if clamped > 0 {
		log.Warn("widths: derived advances clamped to cell width",
			"clamped", clamped, "entries", n, "cellWidth", geom.CellWidth)
	}
	log.Debug("widths: derived table from OpenType metrics",
		"entries", n, "ppem", geom.PPEM, "upem", upem)
	return table, nil
}

// parsedFont returns the cached parsed form of data, parsing on first use.
func parsedFont(data []byte) (*font.Font, error) {
	key := fontKey{hash: cache.BytesHasher(data), first: &data[0], n: len(data)}
	if f, ok := parsed.Get(key); ok {
		return f, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("widths: parsing font: %w", err)
	}
	parsed.Set(key, face.Font)
	return face.Font, nil
}
