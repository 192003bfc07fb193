// Package device allocates bitmap targets on a registered backend.
//
// A Device binds a backend, chosen by name or by registry priority, to a
// font collection. Each BitmapTarget owns one premultiplied RGBA surface
// and the single render context drawing into it:
//
//	dev, err := device.New(device.WithBackend("sk"))
//	if err != nil {
//		return err
//	}
//	target, err := dev.BitmapTarget(640, 480, 2)
//	if err != nil {
//		return err
//	}
//	rc := target.RenderContext()
//	rc.Clear(vcanvas.White)
//	// ... draw ...
//	if err := rc.Finish(); err != nil {
//		return err
//	}
//	return target.SaveToFile("out.png")
//
// Importing device links every backend that was not excluded by build tags.
package device
