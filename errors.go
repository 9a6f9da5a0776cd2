package overflow

import "errors"

// ErrInvalidValue is the panic value raised by Checked.Unwrap when the
// wrapper has been invalidated by an earlier overflow.
var ErrInvalidValue = errors.New("overflow: value invalidated by overflow")
