package skpaint

import "errors"

var (
	// ErrNoColors is returned by gradient constructors given no colors.
	ErrNoColors = errors.New("skpaint: gradient needs at least one color")

	// ErrPositions is returned when gradient positions do not match the
	// colors or are not ascending in [0, 1].
	ErrPositions = errors.New("skpaint: invalid gradient positions")

	// ErrRestoreUnderflow is returned by Restore with nothing saved.
	ErrRestoreUnderflow = errors.New("skpaint: restore without save")
)
