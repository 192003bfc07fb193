// Package scene decodes drawing documents and replays them onto a render
// context.
//
// A document is a canvas size plus a list of operations, written in YAML or
// TOML:
//
//	width: 200
//	height: 100
//	background: "#ffffff"
//	ops:
//	  - op: fill
//	    shape: {type: circle, center: [50, 50], radius: 40}
//	    brush: "#3366cc"
//	  - op: stroke
//	    shape: {type: path, data: "M 100 10 L 190 90 Z"}
//	    brush:
//	      linear: {start: [100, 10], end: [190, 90], stops: [{pos: 0, color: red}, {pos: 1, color: blue}]}
//	    width: 4
//
// Brushes are either a color string or a table with a linear or radial
// gradient. Colors are hex strings or one of a few names.
package scene
