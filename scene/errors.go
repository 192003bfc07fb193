package scene

import "errors"

var (
	// ErrUnknownFormat is returned for a document extension other than
	// .yaml, .yml or .toml.
	ErrUnknownFormat = errors.New("scene: unknown document format")

	// ErrUnknownOp is returned for an operation name the replayer does not
	// know.
	ErrUnknownOp = errors.New("scene: unknown operation")

	// ErrShape is returned for a missing or malformed shape.
	ErrShape = errors.New("scene: invalid shape")

	// ErrBrush is returned for a malformed brush.
	ErrBrush = errors.New("scene: invalid brush")

	// ErrPathData is returned for malformed path data.
	ErrPathData = errors.New("scene: invalid path data")
)
