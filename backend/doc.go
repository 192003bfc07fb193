// Package backend provides a pluggable rendering backend abstraction.
//
// Each backend translates the vcanvas drawing contract onto one native
// imaging engine. Backends register a Factory from init() functions and are
// selected at configuration time by name.
//
// # Backend Registration
//
// Importing a backend package registers it:
//
//	import _ "github.com/gogpu/vcanvas/backend/gs"
//	import _ "github.com/gogpu/vcanvas/backend/sk"
//
// Build tags control which implementations are compiled. Building with the
// nosk tag replaces the sk backend with a stub; selecting it then reports
// vcanvas.MissingFeature.
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	name, factory, err := backend.Default()
//
//	factory, err := backend.Get(backend.SK)
//	target, err := factory(800, 600, 1, collection)
//
// # Available Backends
//
//   - "gs": graphics-state engine, y-up device space, float64 geometry
//   - "sk": canvas engine, y-down device space, float32 geometry
package backend
