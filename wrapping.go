package overflow

import (
	"fmt"

	"github.com/hupe1980/overflow/intops"
)

// Wrapping marks an integer for wrapping-overflow arithmetic.
//
// Every operation truncates its result to the bit width of T, treating the
// minimum and maximum values as adjacent on a circular number line. No
// operation can fail, except for the universal zero-divisor panic.
type Wrapping[T intops.Integer] struct {
	value T
}

// Value returns the held integer.
func (w Wrapping[T]) Value() T {
	return w.value
}

// Add returns w + rhs, wrapping at the boundary of T.
func (w Wrapping[T]) Add(rhs Wrapping[T]) Wrapping[T] {
	return Wrapping[T]{intops.WrappingAdd(w.value, rhs.value)}
}

// Sub returns w - rhs, wrapping at the boundary of T.
func (w Wrapping[T]) Sub(rhs Wrapping[T]) Wrapping[T] {
	return Wrapping[T]{intops.WrappingSub(w.value, rhs.value)}
}

// Mul returns w * rhs, wrapping at the boundary of T.
func (w Wrapping[T]) Mul(rhs Wrapping[T]) Wrapping[T] {
	return Wrapping[T]{intops.WrappingMul(w.value, rhs.value)}
}

// Div returns w / rhs; MinOf / -1 wraps to MinOf. A zero divisor panics.
func (w Wrapping[T]) Div(rhs Wrapping[T]) Wrapping[T] {
	return Wrapping[T]{intops.WrappingDiv(w.value, rhs.value)}
}

// Rem returns w % rhs; MinOf % -1 wraps to 0. A zero divisor panics.
func (w Wrapping[T]) Rem(rhs Wrapping[T]) Wrapping[T] {
	return Wrapping[T]{intops.WrappingRem(w.value, rhs.value)}
}

// Neg returns the two's complement negation of w.
func (w Wrapping[T]) Neg() Wrapping[T] {
	return Wrapping[T]{intops.WrappingNeg(w.value)}
}

// Shl returns w << amt with the amount reduced modulo the bit width of T.
func (w Wrapping[T]) Shl(amt uint) Wrapping[T] {
	return Wrapping[T]{intops.WrappingShl(w.value, amt)}
}

// Shr returns w >> amt with the amount reduced modulo the bit width of T.
func (w Wrapping[T]) Shr(amt uint) Wrapping[T] {
	return Wrapping[T]{intops.WrappingShr(w.value, amt)}
}

// Abs returns |w|; |MinOf| wraps back to MinOf.
func (w Wrapping[T]) Abs() Wrapping[T] {
	return Wrapping[T]{intops.WrappingAbs(w.value)}
}

// Pow returns w**exp, wrapping at every step.
func (w Wrapping[T]) Pow(exp uint) Wrapping[T] {
	return Wrapping[T]{intops.WrappingPow(w.value, exp)}
}

// DivEuclid returns the Euclidean quotient of w and rhs; MinOf div -1
// wraps to MinOf. A zero divisor panics.
func (w Wrapping[T]) DivEuclid(rhs Wrapping[T]) Wrapping[T] {
	return Wrapping[T]{intops.WrappingDivEuclid(w.value, rhs.value)}
}

// RemEuclid returns the Euclidean remainder of w and rhs, always in
// [0, |rhs|). A zero divisor panics.
func (w Wrapping[T]) RemEuclid(rhs Wrapping[T]) Wrapping[T] {
	return Wrapping[T]{intops.WrappingRemEuclid(w.value, rhs.value)}
}

// String implements fmt.Stringer.
func (w Wrapping[T]) String() string {
	return fmt.Sprintf("%d", w.value)
}
