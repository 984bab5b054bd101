// Package render draws text onto image/draw targets using varfont fonts.
// It works identically with monospaced fonts and variable-width fonts,
// since both expose the varfont.Font capability surface.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/varfont"
	"github.com/gogpu/varfont/mono"
)

// Style describes how text is drawn: the font, the foreground color, an
// optional background fill, and optional decoration lines. A Style is
// immutable after construction and safe for concurrent use.
type Style struct {
	font varfont.Font
	fg   color.Color
	bg   color.Color // nil means transparent background

	underline     bool
	strikethrough bool
}

// StyleOption configures a Style.
type StyleOption func(*Style)

// WithBackground fills the character cells (and the spacing between them)
// with c before drawing glyph pixels.
func WithBackground(c color.Color) StyleOption {
	return func(s *Style) { s.bg = c }
}

// WithUnderline draws the font's underline decoration across the text.
func WithUnderline() StyleOption {
	return func(s *Style) { s.underline = true }
}

// WithStrikethrough draws the font's strikethrough decoration across the
// text.
func WithStrikethrough() StyleOption {
	return func(s *Style) { s.strikethrough = true }
}

// NewStyle creates a Style drawing with font in the foreground color fg.
func NewStyle(font varfont.Font, fg color.Color, opts ...StyleOption) *Style {
	s := &Style{font: font, fg: fg}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Font returns the style's font.
func (s *Style) Font() varfont.Font { return s.font }

// DrawString draws text onto dst with the baseline starting at dot and
// returns the dot advanced past the drawn text. The horizontal advance
// always equals s.Font().MeasureString(text).
//
// Pixels falling outside dst are clipped by the draw target; DrawString
// never fails for any dot.
func (s *Style) DrawString(dst draw.Image, text string, dot image.Point) image.Point {
	top := dot.Y - s.font.Baseline()
	height := s.font.CharacterHeight()
	spacing := s.font.CharacterSpacing()

	fg := image.NewUniform(s.fg)
	if s.bg != nil {
		// Background covers the glyph cells and the gaps between them,
		// i.e. exactly the measured extent, never past the last glyph.
		extent := image.Rect(dot.X, top, dot.X+s.font.MeasureString(text), top+height)
		draw.Draw(dst, extent, image.NewUniform(s.bg), image.Point{}, draw.Over)
	}

	x := dot.X
	n := 0
	for _, r := range text {
		g := s.font.Glyph(r)
		w := g.Bounds().Dx()
		cell := image.Rect(x, top, x+w, top+height)
		// The glyph doubles as its own alpha mask: on-bits are opaque.
		draw.DrawMask(dst, cell, fg, image.Point{}, g, image.Point{}, draw.Over)
		x += w + spacing
		n++
	}
	if n > 0 {
		x -= spacing
	}

	if s.strikethrough {
		s.drawDecoration(dst, fg, s.font.Strikethrough(), dot.X, x, top)
	}
	if s.underline {
		s.drawDecoration(dst, fg, s.font.Underline(), dot.X, x, top)
	}

	varfont.Logger().Debug("render: drew string",
		"runes", n, "advance", x-dot.X, "dot", dot)
	return image.Pt(x, dot.Y)
}

// drawDecoration fills one horizontal decoration line across [x0, x1).
func (s *Style) drawDecoration(dst draw.Image, fg *image.Uniform, d mono.DecorationDimensions, x0, x1, top int) {
	if d.Height <= 0 || x1 <= x0 {
		return
	}
	line := image.Rect(x0, top+d.Offset, x1, top+d.Offset+d.Height)
	draw.Draw(dst, line, fg, image.Point{}, draw.Over)
}
