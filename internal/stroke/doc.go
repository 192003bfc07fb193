// Package stroke expands stroked polylines into fill polygons.
//
// A stroke is emitted as a union of simple polygons: one quadrilateral per
// segment, one polygon per join and one per cap. Every polygon is emitted
// with the same (positive) orientation, so filling the result with the
// non-zero rule produces their union without seams.
//
// # Line Caps
//
//   - CapButt: flat end exactly at the endpoint
//   - CapRound: half disc with radius = width/2
//   - CapSquare: square extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - JoinMiter: sharp corner, falling back to bevel past the miter limit
//   - JoinRound: circular arc
//   - JoinBevel: straight line across the corner
//
// # Usage
//
//	style := stroke.Style{Width: 2, Cap: stroke.CapRound, Join: stroke.JoinMiter, MiterLimit: 10}
//	polys := stroke.NewExpander(style, 0.1).Expand(subpaths)
package stroke
