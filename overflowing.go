package overflow

import (
	"fmt"

	"github.com/hupe1980/overflow/intops"
)

// Overflowing marks an integer for overflow-flagging arithmetic.
//
// The value component always equals what Wrapping would produce for the
// same operations; a separate flag reports whether the most recently
// performed operation exceeded the representable range. The flag is
// non-accumulating: each operation's flag reflects only that operation and
// discards any prior flag state.
type Overflowing[T intops.Integer] struct {
	value    T
	overflow bool
}

// Value returns the held integer.
func (o Overflowing[T]) Value() T {
	return o.value
}

// Overflowed reports whether the most recent operation overflowed.
func (o Overflowing[T]) Overflowed() bool {
	return o.overflow
}

// overflowingFrom pairs an intops result with its overflow flag.
func overflowingFrom[T intops.Integer](v T, ovf bool) Overflowing[T] {
	return Overflowing[T]{value: v, overflow: ovf}
}

// Add returns the wrapping sum of o and rhs, flagging overflow.
func (o Overflowing[T]) Add(rhs Overflowing[T]) Overflowing[T] {
	return overflowingFrom(intops.OverflowingAdd(o.value, rhs.value))
}

// Sub returns the wrapping difference of o and rhs, flagging overflow.
func (o Overflowing[T]) Sub(rhs Overflowing[T]) Overflowing[T] {
	return overflowingFrom(intops.OverflowingSub(o.value, rhs.value))
}

// Mul returns the wrapping product of o and rhs, flagging overflow.
func (o Overflowing[T]) Mul(rhs Overflowing[T]) Overflowing[T] {
	return overflowingFrom(intops.OverflowingMul(o.value, rhs.value))
}

// Div returns o / rhs; MinOf / -1 wraps to MinOf with the flag set. A zero
// divisor panics.
func (o Overflowing[T]) Div(rhs Overflowing[T]) Overflowing[T] {
	return overflowingFrom(intops.OverflowingDiv(o.value, rhs.value))
}

// Rem returns o % rhs; MinOf % -1 wraps to 0 with the flag set. A zero
// divisor panics.
func (o Overflowing[T]) Rem(rhs Overflowing[T]) Overflowing[T] {
	return overflowingFrom(intops.OverflowingRem(o.value, rhs.value))
}

// Neg returns the two's complement negation of o, flagging overflow.
func (o Overflowing[T]) Neg() Overflowing[T] {
	return overflowingFrom(intops.OverflowingNeg(o.value))
}

// Shl returns o << amt with the amount reduced modulo the bit width of T,
// flagging amounts at or beyond the width.
func (o Overflowing[T]) Shl(amt uint) Overflowing[T] {
	return overflowingFrom(intops.OverflowingShl(o.value, amt))
}

// Shr returns o >> amt with the amount reduced modulo the bit width of T,
// flagging amounts at or beyond the width.
func (o Overflowing[T]) Shr(amt uint) Overflowing[T] {
	return overflowingFrom(intops.OverflowingShr(o.value, amt))
}

// Abs returns |o|; |MinOf| wraps back to MinOf with the flag set.
func (o Overflowing[T]) Abs() Overflowing[T] {
	return overflowingFrom(intops.OverflowingAbs(o.value))
}

// Pow returns the wrapping value of o**exp, flagging overflow.
func (o Overflowing[T]) Pow(exp uint) Overflowing[T] {
	return overflowingFrom(intops.OverflowingPow(o.value, exp))
}

// DivEuclid returns the Euclidean quotient of o and rhs; MinOf div -1
// wraps to MinOf with the flag set. A zero divisor panics.
func (o Overflowing[T]) DivEuclid(rhs Overflowing[T]) Overflowing[T] {
	return overflowingFrom(intops.OverflowingDivEuclid(o.value, rhs.value))
}

// RemEuclid returns the Euclidean remainder of o and rhs; MinOf rem -1
// wraps to 0 with the flag set. A zero divisor panics.
func (o Overflowing[T]) RemEuclid(rhs Overflowing[T]) Overflowing[T] {
	return overflowingFrom(intops.OverflowingRemEuclid(o.value, rhs.value))
}

// String implements fmt.Stringer.
func (o Overflowing[T]) String() string {
	return fmt.Sprintf("%d", o.value)
}
