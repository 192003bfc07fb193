// Package gs implements vcanvas.RenderContext on the graphics-state engine.
//
// The engine's device space is y-up with the origin at the bottom-left
// corner. Unless the context is created flipped, it concatenates
// translate(0, h) and scale(1, -1) once so callers see a top-left origin
// with y growing downward. Images and glyphs are flipped locally where they
// are drawn.
//
// Importing the package registers the "gs" backend.
package gs
