package bridge

import "github.com/gogpu/vcanvas"

// Recorder keeps the first error raised by a drawing verb until it is
// taken. The zero value is ready to use.
type Recorder struct {
	// Backend names the owner in log records.
	Backend string

	err error
}

// Record keeps err unless an earlier error is pending. Every error is
// logged at warn level.
func (r *Recorder) Record(err error) {
	if err == nil {
		return
	}
	vcanvas.Logger().Warn("vcanvas: drawing error", "backend", r.Backend, "err", err)
	if r.err == nil {
		r.err = err
	}
}

// Take returns the pending error and clears it.
func (r *Recorder) Take() error {
	err := r.err
	r.err = nil
	return err
}
