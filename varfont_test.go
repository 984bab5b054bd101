package varfont

import (
	"image"
	"strings"
	"testing"

	"github.com/gogpu/varfont/mono"
)

func TestVariableFontGlyph(t *testing.T) {
	font := testMono(t)
	vf := New(font, NewLookupTable([]byte{3, 5, 0, 8}))

	t.Run("crops to mapped width", func(t *testing.T) {
		g := vf.Glyph('a')
		if got := g.Bounds().Dx(); got != 3 {
			t.Errorf("width = %d, want 3", got)
		}
		if got := g.Bounds().Dy(); got != 4 {
			t.Errorf("height = %d, want 4", got)
		}
		// The kept pixels survive the crop.
		for x := 0; x < 3; x++ {
			if g.AlphaAt(x, 0).A == 0 {
				t.Errorf("pixel (%d,0) transparent, want opaque", x)
			}
		}
		// The pixel at (5,1) exists in the full cell but is cropped away.
		if full := font.Glyph('a'); full.AlphaAt(5, 1).A == 0 {
			t.Fatal("fixture pixel (5,1) missing from the full glyph")
		}
		if g.AlphaAt(5, 1).A != 0 {
			t.Error("pixel (5,1) visible after crop to width 3")
		}
	})

	t.Run("zero width keeps native height", func(t *testing.T) {
		g := vf.Glyph('c')
		if got := g.Bounds().Dx(); got != 0 {
			t.Errorf("width = %d, want 0", got)
		}
		if got := g.Bounds().Dy(); got != 4 {
			t.Errorf("height = %d, want 4", got)
		}
	})

	t.Run("out-of-table falls back to full cell", func(t *testing.T) {
		g := vf.Glyph('z')
		if got := g.Bounds().Dx(); got != 10 {
			t.Errorf("width = %d, want 10", got)
		}
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		// A range with Start >= End denotes zero visible width; the crop
		// must not reorder the bounds into a visible glyph.
		inv := New(font, GlyphWidthFunc(func(*mono.Font, rune) WidthRange {
			return WidthRange{Start: 5, End: 2}
		}))
		g := inv.Glyph('a')
		if got := g.Bounds().Dx(); got != 0 {
			t.Errorf("width = %d, want 0", got)
		}
		if got := g.Bounds().Dy(); got != 4 {
			t.Errorf("height = %d, want 4", got)
		}
		// Glyph and MeasureString agree on the empty range.
		if got := inv.MeasureString("a"); got != 0 {
			t.Errorf("MeasureString(\"a\") = %d, want 0", got)
		}
	})

	t.Run("height never depends on the mapping", func(t *testing.T) {
		for _, r := range "abcdez" {
			if got := vf.Glyph(r).Bounds().Dy(); got != font.CharacterHeight() {
				t.Errorf("Glyph(%q) height = %d, want %d", r, got, font.CharacterHeight())
			}
		}
	})
}

func TestVariableFontMeasureString(t *testing.T) {
	font := testMono(t) // spacing 1
	vf := New(font, NewLookupTable([]byte{3, 5, 0, 8}))

	tests := []struct {
		name string
		s    string
		want int
	}{
		{"empty", "", 0},
		{"single", "a", 3},
		{"single zero width", "c", 0},
		// widths 3, 0, 5 with spacing 1: 3+1+0+1+5 = 10, minus the
		// trailing spacing = 9.
		{"three characters", "acb", 9},
		{"fallback width", "z", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vf.MeasureString(tt.s); got != tt.want {
				t.Errorf("MeasureString(%q) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}

	t.Run("matches glyph layout", func(t *testing.T) {
		// Measurement must equal what a caller observes by laying out
		// the cropped glyphs separated by the fixed spacing.
		s := "abcdez"
		laidOut := 0
		for _, r := range s {
			laidOut += vf.Glyph(r).Bounds().Dx() + vf.CharacterSpacing()
		}
		laidOut -= vf.CharacterSpacing()
		if got := vf.MeasureString(s); got != laidOut {
			t.Errorf("MeasureString(%q) = %d, layout says %d", s, got, laidOut)
		}
	})
}

func TestVariableFontMetricsPassThrough(t *testing.T) {
	font := testMono(t)
	vf := New(font, NewLookupTable([]byte{3, 5, 0, 8}))

	if got, want := vf.CharacterHeight(), font.CharacterHeight(); got != want {
		t.Errorf("CharacterHeight() = %d, want %d", got, want)
	}
	if got, want := vf.CharacterSpacing(), font.CharacterSpacing(); got != want {
		t.Errorf("CharacterSpacing() = %d, want %d", got, want)
	}
	if got, want := vf.Baseline(), font.Baseline(); got != want {
		t.Errorf("Baseline() = %d, want %d", got, want)
	}
	if got, want := vf.Strikethrough(), font.Strikethrough(); got != want {
		t.Errorf("Strikethrough() = %v, want %v", got, want)
	}
	if got, want := vf.Underline(), font.Underline(); got != want {
		t.Errorf("Underline() = %v, want %v", got, want)
	}
}

func TestVariableFontNilMapping(t *testing.T) {
	font := testMono(t)
	vf := New(font, nil)

	if got := vf.Glyph('a').Bounds().Dx(); got != 10 {
		t.Errorf("Glyph width = %d, want native 10", got)
	}
	if got, want := vf.MeasureString("ab"), font.MeasureString("ab"); got != want {
		t.Errorf("MeasureString = %d, want %d", got, want)
	}
}

func TestVariableFontEqual(t *testing.T) {
	font := testMono(t)
	table := []byte{3, 5, 0, 8}
	shared := NewLookupTable(table)

	t.Run("same font and mapping instance", func(t *testing.T) {
		a, b := New(font, shared), New(font, shared)
		if !a.Equal(b) {
			t.Error("composers with the same font and mapping instance must be equal")
		}
	})

	t.Run("value-identical but distinct mappings", func(t *testing.T) {
		a := New(font, NewLookupTable(table))
		b := New(font, NewLookupTable(table))
		if a.Equal(b) {
			t.Error("distinct mapping instances must compare unequal, even with equal contents")
		}
	})

	t.Run("different fonts", func(t *testing.T) {
		other, err := mono.New(mono.Config{
			Atlas:      []byte{0xf0},
			AtlasWidth: 4,
			CellSize:   image.Pt(4, 2),
			Mapping:    mono.GlyphMappingFunc(func(rune) int { return 0 }),
		})
		if err != nil {
			t.Fatalf("mono.New: %v", err)
		}
		a, b := New(font, shared), New(other, shared)
		if a.Equal(b) {
			t.Error("composers over unequal fonts must compare unequal")
		}
	})

	t.Run("nil handling", func(t *testing.T) {
		a := New(font, shared)
		if a.Equal(nil) {
			t.Error("Equal(nil) must be false")
		}
		var b *VariableFont
		if !b.Equal(nil) {
			t.Error("nil composers compare equal")
		}
	})
}

func TestVariableFontString(t *testing.T) {
	font := testMono(t)
	vf := New(font, NewLookupTable([]byte{3}))
	s := vf.String()
	if want := font.String(); !strings.Contains(s, want) {
		t.Errorf("String() = %q, want it to surface %q", s, want)
	}
	if !strings.Contains(s, "?") {
		t.Errorf("String() = %q, want the mapping redacted as ?", s)
	}
}

func TestVariableFontImplementsFont(t *testing.T) {
	// Both implementations compile against the shared surface; this just
	// exercises the substitution at runtime.
	font := testMono(t)
	for _, f := range []Font{font, New(font, NewLookupTable([]byte{3, 5, 0, 8}))} {
		if f.MeasureString("") != 0 {
			t.Errorf("%T: MeasureString(\"\") != 0", f)
		}
	}
}
