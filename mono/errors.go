package mono

import "errors"

// Sentinel errors for the mono package.
var (
	// ErrNoAtlas is returned when a font is created without atlas data.
	ErrNoAtlas = errors.New("mono: empty glyph atlas")

	// ErrBadGeometry is returned when the cell or atlas dimensions are not
	// positive, or the atlas row is narrower than one cell.
	ErrBadGeometry = errors.New("mono: invalid font geometry")

	// ErrNoMapping is returned when a font is created without a glyph
	// mapping.
	ErrNoMapping = errors.New("mono: missing glyph mapping")

	// ErrBadFontSheet is returned by Decode for malformed glyph sheets.
	ErrBadFontSheet = errors.New("mono: malformed font sheet")
)
