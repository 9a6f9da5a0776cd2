package overflow

import "github.com/hupe1980/overflow/intops"

// AsChecked lifts v into checked-overflow arithmetic. The wrapper starts
// valid; this is also the way to re-arm a value after invalidation.
func AsChecked[T intops.Integer](v T) Checked[T] {
	return Checked[T]{value: v, ok: true}
}

// AsWrapping lifts v into wrapping-overflow arithmetic.
func AsWrapping[T intops.Integer](v T) Wrapping[T] {
	return Wrapping[T]{value: v}
}

// AsOverflowing lifts v into overflow-flagging arithmetic. The flag starts
// false.
func AsOverflowing[T intops.Integer](v T) Overflowing[T] {
	return Overflowing[T]{value: v}
}

// AsSaturating lifts v into saturating-overflow arithmetic.
func AsSaturating[T intops.Integer](v T) Saturating[T] {
	return Saturating[T]{value: v}
}
