package backend

import (
	"errors"
	"image"

	"github.com/gogpu/vcanvas"
	"github.com/gogpu/vcanvas/internal/typeset"
)

// Backend names.
const (
	// GS is the graphics-state backend: a y-up engine flipped at creation.
	GS = "gs"
	// SK is the canvas backend: a y-down float32 engine.
	SK = "sk"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrCompiledOut is returned for a backend excluded by build tags.
	ErrCompiledOut = errors.New("backend: compiled out of this build")
)

// Target is a bitmap surface drawn by one backend.
type Target interface {
	// RenderContext returns the context drawing into the surface. Every
	// call returns the same context.
	RenderContext() vcanvas.RenderContext

	// Finished reports whether Finish has been called on the context.
	Finished() bool

	// Pixels returns the premultiplied surface, top row first.
	Pixels() *image.RGBA
}

// Factory creates a target of width x height device pixels whose logical
// units are scaled by pixScale. Fonts are resolved from text.
type Factory func(width, height int, pixScale float64, text *typeset.Collection) (Target, error)
