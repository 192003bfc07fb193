package bridge

import (
	"errors"

	"github.com/gogpu/vcanvas"
	"github.com/gogpu/vcanvas/internal/typeset"
)

// TextError classifies a typeset error: bad sizes and widths are
// InvalidInput, everything else is a BackendError.
func TextError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, typeset.ErrInvalidSize), errors.Is(err, typeset.ErrInvalidWidth), errors.Is(err, typeset.ErrNilFont):
		return vcanvas.NewError(op, vcanvas.InvalidInput, err)
	default:
		return vcanvas.AsBackendError(op, err)
	}
}
