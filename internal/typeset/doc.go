// Package typeset shapes and lays out text for the render backends.
//
// The pipeline is split the same way for every backend:
//
//   - Collection: the set of known font families (bundled Go and Latin
//     Modern faces, optionally the system fonts) and family aliases
//   - Font: a resolved face at a given size with its vertical metrics
//   - Layout: text shaped with HarfBuzz, broken into lines at UAX #14
//     opportunities, and queried for metrics and hit tests
//
// Glyph geometry leaves the package through PathSink, so each backend
// decides how outlines become coverage.
//
// # Example usage
//
//	coll, err := typeset.NewCollection()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	f, err := coll.Match("sans-serif", 16, typeset.MatchBest)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	layout, err := typeset.NewLayout(f, "Hello, world", 120)
package typeset
