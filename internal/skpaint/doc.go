// Package skpaint is a canvas drawing engine in the style of Skia.
//
// A Canvas draws into a premultiplied *image.RGBA with the origin at the
// top-left pixel corner and y increasing downward. Geometry is described
// with float32 scalars; a Paint carries the color, shader, stroke and mask
// filter settings of each draw call. The canvas keeps a stack of matrix and
// clip states driven by Save and Restore.
package skpaint
