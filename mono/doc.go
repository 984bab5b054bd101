// Package mono implements monospaced bitmap fonts: fonts whose glyphs all
// occupy a fixed-size cell inside a shared 1-bit-per-pixel atlas.
//
// A Font is constructed either directly from atlas data (New) or from a
// plain-text font sheet (Decode). Glyphs are zero-copy views implementing
// image.Image, so they plug straight into image/draw and the wider image
// ecosystem.
//
// Character-to-cell resolution is pluggable through GlyphMapping. The
// package ships mappings for contiguous rune ranges (RangeMapping), legacy
// code pages via golang.org/x/text/encoding/charmap (CharmapMapping), and
// explicit tables (IndexMapping).
//
// Fonts, mappings, and glyphs are immutable after construction and safe for
// concurrent use without locking.
package mono
