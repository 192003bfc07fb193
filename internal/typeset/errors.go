package typeset

import "errors"

// Sentinel errors for the typeset package.
var (
	// ErrFontNotFound is returned when no face satisfies a font query.
	ErrFontNotFound = errors.New("typeset: font not found")

	// ErrInvalidSize is returned for a font size that is not a positive
	// finite number.
	ErrInvalidSize = errors.New("typeset: invalid font size")

	// ErrInvalidWidth is returned for a negative or NaN layout width.
	ErrInvalidWidth = errors.New("typeset: invalid layout width")

	// ErrNilFont is returned when a layout is requested without a font.
	ErrNilFont = errors.New("typeset: nil font")
)
