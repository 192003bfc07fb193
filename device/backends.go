package device

import (
	// Register the bundled backends.
	_ "github.com/gogpu/vcanvas/backend/gs"
	_ "github.com/gogpu/vcanvas/backend/sk"
)
