package overflow

import (
	"fmt"

	"github.com/hupe1980/overflow/intops"
)

// Saturating marks an integer for saturating-overflow arithmetic.
//
// An out-of-range result clamps to the nearer of the type's bounds; the
// held value is always within [MinOf, MaxOf]. No operation can fail,
// except for the universal zero-divisor panic.
//
// Negation and shifts are deliberately absent: clamping has no single
// well-defined meaning for negating an unsigned value or for an
// out-of-range shift amount, so those operators do not exist on this type.
type Saturating[T intops.Integer] struct {
	value T
}

// Value returns the held integer.
func (s Saturating[T]) Value() T {
	return s.value
}

// Add returns s + rhs, clamping to the boundary of T.
func (s Saturating[T]) Add(rhs Saturating[T]) Saturating[T] {
	return Saturating[T]{intops.SaturatingAdd(s.value, rhs.value)}
}

// Sub returns s - rhs, clamping to the boundary of T.
func (s Saturating[T]) Sub(rhs Saturating[T]) Saturating[T] {
	return Saturating[T]{intops.SaturatingSub(s.value, rhs.value)}
}

// Mul returns s * rhs, clamping to the boundary of T.
func (s Saturating[T]) Mul(rhs Saturating[T]) Saturating[T] {
	return Saturating[T]{intops.SaturatingMul(s.value, rhs.value)}
}

// Div returns s / rhs; MinOf / -1 clamps to MaxOf. A zero divisor panics.
func (s Saturating[T]) Div(rhs Saturating[T]) Saturating[T] {
	return Saturating[T]{intops.SaturatingDiv(s.value, rhs.value)}
}

// Rem returns s % rhs; the true remainder is always representable. A zero
// divisor panics.
func (s Saturating[T]) Rem(rhs Saturating[T]) Saturating[T] {
	return Saturating[T]{intops.SaturatingRem(s.value, rhs.value)}
}

// Abs returns |s|; |MinOf| clamps to MaxOf.
func (s Saturating[T]) Abs() Saturating[T] {
	return Saturating[T]{intops.SaturatingAbs(s.value)}
}

// Pow returns s**exp, clamping to the exceeded bound.
func (s Saturating[T]) Pow(exp uint) Saturating[T] {
	return Saturating[T]{intops.SaturatingPow(s.value, exp)}
}

// DivEuclid returns the Euclidean quotient of s and rhs; MinOf div -1
// clamps to MaxOf. A zero divisor panics.
func (s Saturating[T]) DivEuclid(rhs Saturating[T]) Saturating[T] {
	return Saturating[T]{intops.SaturatingDivEuclid(s.value, rhs.value)}
}

// RemEuclid returns the Euclidean remainder of s and rhs, always in
// [0, |rhs|). A zero divisor panics.
func (s Saturating[T]) RemEuclid(rhs Saturating[T]) Saturating[T] {
	return Saturating[T]{intops.SaturatingRemEuclid(s.value, rhs.value)}
}

// String implements fmt.Stringer.
func (s Saturating[T]) String() string {
	return fmt.Sprintf("%d", s.value)
}
