// Package gstate is a graphics-state drawing engine in the style of a
// PDF/Quartz context: a y-up device space with the origin at the bottom-left
// pixel corner, a current transformation matrix, a current path consumed by
// each painting operator, and a stack of saved graphics states.
//
// Painting happens in software into a premultiplied *image.RGBA.
package gstate
