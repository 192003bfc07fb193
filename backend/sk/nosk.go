//go:build nosk

package sk

import "github.com/gogpu/vcanvas/backend"

func init() {
	backend.Register(backend.SK, nil)
}
