package varfont

import (
	"image"
	"testing"

	"github.com/gogpu/varfont/mono"
)

// testMono builds a 10x4 monospaced fixture font with four glyph cells.
// Glyph 0 has pixels at (0,0)..(2,0) and at (5,1); glyph 1 has pixels at
// (0,0)..(4,0). Characters 'a'..'e' resolve to glyph indices 0..4; every
// other character resolves to index 10, beyond the atlas.
func testMono(t *testing.T) *mono.Font {
	t.Helper()

	atlas := make([]byte, 20) // 40px wide, 4px tall
	atlas[0] = 0xe0           // glyph 0, row 0: xxx.......
	atlas[5] = 0x04           // glyph 0, row 1: bit 45 = x 5
	atlas[1] = 0x3e           // glyph 1, row 0: xxxxx..... (atlas x 10..14)

	f, err := mono.New(mono.Config{
		Atlas:         atlas,
		AtlasWidth:    40,
		CellSize:      image.Pt(10, 4),
		Spacing:       1,
		Baseline:      3,
		Strikethrough: mono.DecorationDimensions{Offset: 1, Height: 1},
		Underline:     mono.DecorationDimensions{Offset: 3, Height: 1},
		Mapping: mono.GlyphMappingFunc(func(r rune) int {
			if r >= 'a' && r <= 'e' {
				return int(r - 'a')
			}
			return 10
		}),
	})
	if err != nil {
		t.Fatalf("mono.New: %v", err)
	}
	return f
}

func TestWidthRangeSize(t *testing.T) {
	tests := []struct {
		name  string
		r     WidthRange
		size  int
		empty bool
	}{
		{"normal", WidthRange{Start: 0, End: 3}, 3, false},
		{"offset", WidthRange{Start: 2, End: 5}, 3, false},
		{"zero", WidthRange{Start: 0, End: 0}, 0, true},
		{"inverted", WidthRange{Start: 5, End: 2}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Size(); got != tt.size {
				t.Errorf("Size() = %d, want %d", got, tt.size)
			}
			if got := tt.r.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestLookupTable(t *testing.T) {
	font := testMono(t)
	table := []byte{3, 5, 0, 8}

	t.Run("without default", func(t *testing.T) {
		m := NewLookupTable(table)
		tests := []struct {
			name string
			r    rune
			want WidthRange
		}{
			{"index 0", 'a', WidthRange{Start: 0, End: 3}},
			{"index 1", 'b', WidthRange{Start: 0, End: 5}},
			{"zero entry is invisible", 'c', WidthRange{Start: 0, End: 0}},
			{"index 3", 'd', WidthRange{Start: 0, End: 8}},
			{"index at table length is out of range", 'e', WidthRange{Start: 0, End: 10}},
			{"out of range falls back to cell width", 'z', WidthRange{Start: 0, End: 10}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if got := m.GlyphWidth(font, tt.r); got != tt.want {
					t.Errorf("GlyphWidth(%q) = %v, want %v", tt.r, got, tt.want)
				}
			})
		}
	})

	t.Run("with default", func(t *testing.T) {
		m := NewLookupTableWithDefault(table, 4)
		if got := m.GlyphWidth(font, 'z'); got != (WidthRange{Start: 0, End: 4}) {
			t.Errorf("GlyphWidth('z') = %v, want 0..4", got)
		}
		// In-table entries are unaffected by the default.
		if got := m.GlyphWidth(font, 'a'); got != (WidthRange{Start: 0, End: 3}) {
			t.Errorf("GlyphWidth('a') = %v, want 0..3", got)
		}
		// A zero default is valid, like a zero table entry.
		zero := NewLookupTableWithDefault(table, 0)
		if got := zero.GlyphWidth(font, 'z'); !got.Empty() {
			t.Errorf("GlyphWidth('z') = %v, want empty", got)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		m := NewLookupTable(table)
		for _, r := range "abcz" {
			if first, second := m.GlyphWidth(font, r), m.GlyphWidth(font, r); first != second {
				t.Errorf("GlyphWidth(%q) not deterministic: %v then %v", r, first, second)
			}
		}
	})
}

func TestGlyphWidthFunc(t *testing.T) {
	font := testMono(t)
	m := GlyphWidthFunc(func(f *mono.Font, r rune) WidthRange {
		return WidthRange{Start: 1, End: f.CharacterWidth() - 1}
	})
	if got := m.GlyphWidth(font, 'a'); got != (WidthRange{Start: 1, End: 9}) {
		t.Errorf("GlyphWidth = %v, want 1..9", got)
	}
}
