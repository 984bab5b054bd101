package mono

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Decode reads a font sheet: a plain-text description of a monospaced
// bitmap font. The format has a small header followed by one block per
// glyph:
//
//	# 4x5 digits
//	size 4 5
//	spacing 1
//	baseline 4
//	underline 4 1
//	strikethrough 2 1
//	glyph 0
//	.XX.
//	X..X
//	X..X
//	X..X
//	.XX.
//	glyph 1
//	..X.
//	.XX.
//	..X.
//	..X.
//	.XXX
//
// Pixel rows use 'X' for set pixels and '.' or ' ' for blanks; short
// or missing rows are padded blank. Whitespace-only lines are ignored,
// so a fully blank row must be spelled with dots (or left off the end). The glyph argument is the literal
// character, or the word "space" for U+0020. Glyph indices are assigned in
// declaration order; an optional "fallback <char>" directive selects the
// glyph used for unmapped characters (default: the first glyph).
//
// Decode returns an error wrapping ErrBadFontSheet for malformed input.
func Decode(r io.Reader) (*Font, error) {
	d := sheetDecoder{index: make(map[rune]int)}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		d.line++
		if err := d.consume(strings.TrimRight(sc.Text(), "\r")); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mono: reading font sheet: %w", err)
	}
	return d.build()
}

// sheetDecoder accumulates parser state line by line.
type sheetDecoder struct {
	line int

	cellW, cellH  int
	spacing       int
	baseline      int
	strikethrough DecorationDimensions
	underline     DecorationDimensions

	glyphs   []glyphRows
	index    map[rune]int
	fallback rune
	hasFall  bool
}

// glyphRows holds one glyph's pixel rows as booleans.
type glyphRows struct {
	r    rune
	rows [][]bool
}

func (d *sheetDecoder) errf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrBadFontSheet, d.line, fmt.Sprintf(format, args...))
}

func (d *sheetDecoder) consume(line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}
	fields := strings.Fields(trimmed)
	switch fields[0] {
	case "size":
		return d.ints(fields, &d.cellW, &d.cellH)
	case "spacing":
		return d.ints(fields, &d.spacing)
	case "baseline":
		return d.ints(fields, &d.baseline)
	case "strikethrough":
		return d.ints(fields, &d.strikethrough.Offset, &d.strikethrough.Height)
	case "underline":
		return d.ints(fields, &d.underline.Offset, &d.underline.Height)
	case "fallback":
		r, err := d.glyphArg(fields)
		if err != nil {
			return err
		}
		d.fallback, d.hasFall = r, true
		return nil
	case "glyph":
		if d.cellW <= 0 || d.cellH <= 0 {
			return d.errf("glyph before size directive")
		}
		r, err := d.glyphArg(fields)
		if err != nil {
			return err
		}
		if _, dup := d.index[r]; dup {
			return d.errf("duplicate glyph %q", r)
		}
		d.index[r] = len(d.glyphs)
		d.glyphs = append(d.glyphs, glyphRows{r: r})
		return nil
	default:
		// Not a directive: a pixel row of the current glyph.
		return d.pixelRow(line)
	}
}

// ints parses len(dst) integer arguments after the directive name.
func (d *sheetDecoder) ints(fields []string, dst ...*int) error {
	if len(fields) != len(dst)+1 {
		return d.errf("%s expects %d arguments", fields[0], len(dst))
	}
	for i, p := range dst {
		v, err := strconv.Atoi(fields[i+1])
		if err != nil || v < 0 {
			return d.errf("%s: bad argument %q", fields[0], fields[i+1])
		}
		*p = v
	}
	return nil
}

// glyphArg extracts the single character argument of glyph/fallback.
func (d *sheetDecoder) glyphArg(fields []string) (rune, error) {
	if len(fields) != 2 {
		return 0, d.errf("%s expects one character argument", fields[0])
	}
	if fields[1] == "space" {
		return ' ', nil
	}
	r, size := utf8.DecodeRuneInString(fields[1])
	if r == utf8.RuneError || size != len(fields[1]) {
		return 0, d.errf("%s: bad character %q", fields[0], fields[1])
	}
	return r, nil
}

func (d *sheetDecoder) pixelRow(line string) error {
	if len(d.glyphs) == 0 {
		return d.errf("pixel row outside a glyph block")
	}
	g := &d.glyphs[len(d.glyphs)-1]
	if len(g.rows) >= d.cellH {
		return d.errf("glyph %q has more than %d rows", g.r, d.cellH)
	}
	if utf8.RuneCountInString(line) > d.cellW {
		return d.errf("glyph %q row wider than %d", g.r, d.cellW)
	}
	row := make([]bool, d.cellW)
	for i, c := range line {
		switch c {
		case 'X':
			row[i] = true
		case '.', ' ':
		default:
			return d.errf("glyph %q: bad pixel %q", g.r, c)
		}
	}
	g.rows = append(g.rows, row)
	return nil
}

// build packs the accumulated glyphs into a single-row atlas grid and
// constructs the Font.
func (d *sheetDecoder) build() (*Font, error) {
	d.line++ // errors below refer to end of input
	if d.cellW <= 0 || d.cellH <= 0 {
		return nil, d.errf("missing size directive")
	}
	if len(d.glyphs) == 0 {
		return nil, d.errf("no glyphs declared")
	}
	fallback := 0
	if d.hasFall {
		i, ok := d.index[d.fallback]
		if !ok {
			return nil, d.errf("fallback %q is not a declared glyph", d.fallback)
		}
		fallback = i
	}

	atlasWidth := len(d.glyphs) * d.cellW
	atlas := make([]byte, (atlasWidth*d.cellH+7)/8)
	for gi, g := range d.glyphs {
		for y, row := range g.rows {
			for x, on := range row {
				if !on {
					continue
				}
				bit := y*atlasWidth + gi*d.cellW + x
				atlas[bit/8] |= 0x80 >> uint(bit%8)
			}
		}
	}

	return New(Config{
		Atlas:         atlas,
		AtlasWidth:    atlasWidth,
		CellSize:      image.Pt(d.cellW, d.cellH),
		Spacing:       d.spacing,
		Baseline:      d.baseline,
		Strikethrough: d.strikethrough,
		Underline:     d.underline,
		Mapping:       NewIndexMapping(d.index, fallback),
	})
}
