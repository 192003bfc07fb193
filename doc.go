// Package vcanvas defines a backend-agnostic, immediate-mode 2D drawing contract.
//
// # Overview
//
// Call sites draw shapes, gradients, text and images against a single
// [RenderContext] interface. Backends translate each verb into the calls of a
// concrete native imaging engine while keeping the same observable semantics:
// coordinate orientation, color precision, state stack discipline, gradient
// interpolation and path tessellation.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/vcanvas"
//		"github.com/gogpu/vcanvas/device"
//	)
//
//	dev, _ := device.New()
//	target, _ := dev.BitmapTarget(256, 256, 1)
//	rc := target.RenderContext()
//
//	rc.Clear(vcanvas.White)
//	rc.Fill(vcanvas.NewCircle(vcanvas.Pt(128, 128), 100), vcanvas.RGB8(0x33, 0x66, 0xcc))
//	_ = rc.Finish()
//
//	_ = target.SaveToFile("out.png")
//
// # Coordinate System
//
// The logical coordinate system seen by callers always has its origin at the
// top-left corner with y increasing downward. Backends whose native engine is
// y-up install a one-time flip when the context is created; the flip is part
// of [RenderContext.CurrentTransform].
//
// # Backends
//
// Backends are selected at build time (build tags) and configuration time
// (the device option naming a registered backend). See package backend.
//
// # Errors
//
// Construction operations return errors directly. Drawing verbs never return
// errors; failures are recorded and reported by [RenderContext.Status] and
// [RenderContext.Finish]. All errors carry an [ErrorKind].
package vcanvas

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
