package gstate

import "errors"

var (
	// ErrUnbalancedRestore is returned by RestoreGState with no saved state.
	ErrUnbalancedRestore = errors.New("gstate: restore without matching save")

	// ErrGradientStops is returned for a gradient whose components do not
	// match its locations.
	ErrGradientStops = errors.New("gstate: gradient needs 4 components per location")
)
