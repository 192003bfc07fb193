//go:build nopng

package device

import (
	"io"
	"testing"

	"github.com/gogpu/vcanvas"
)

func TestSaveToFileCompiledOut(t *testing.T) {
	var bt BitmapTarget
	if err := bt.SaveToFile("out.png"); vcanvas.KindOf(err) != vcanvas.MissingFeature {
		t.Errorf("SaveToFile() = %v", err)
	}
	if err := bt.WritePNG(io.Discard); vcanvas.KindOf(err) != vcanvas.MissingFeature {
		t.Errorf("WritePNG() = %v", err)
	}
}
