// Package sk implements vcanvas.RenderContext on the skpaint canvas engine.
//
// The canvas is natively y-down with the origin at the top-left corner, so
// no orientation flip is installed. Geometry is handed to the engine as
// float32. Text is cached per layout as a TextBlob and invalidated when the
// layout width changes.
//
// Importing the package registers the "sk" backend. Building with the nosk
// tag registers it as compiled out instead.
package sk
