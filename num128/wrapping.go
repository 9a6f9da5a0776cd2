package num128

import "math/big"

// Wrapping marks a 128-bit integer for wrapping-overflow arithmetic.
// Semantics match overflow.Wrapping: results are reduced modulo 2^128 into
// the element's range, and no operation can fail except the universal
// zero-divisor panic.
type Wrapping[T Elem[T]] struct {
	value T
}

// Value returns the held integer.
func (w Wrapping[T]) Value() T {
	return w.value
}

func wrappingFrom[T Elem[T]](v T, _ bool) Wrapping[T] {
	return Wrapping[T]{value: v}
}

// Add returns w + rhs, wrapping at the boundary of T.
func (w Wrapping[T]) Add(rhs Wrapping[T]) Wrapping[T] {
	return wrappingFrom(wrap[T](exact2((*big.Int).Add, w.value, rhs.value)))
}

// Sub returns w - rhs, wrapping at the boundary of T.
func (w Wrapping[T]) Sub(rhs Wrapping[T]) Wrapping[T] {
	return wrappingFrom(wrap[T](exact2((*big.Int).Sub, w.value, rhs.value)))
}

// Mul returns w * rhs, wrapping at the boundary of T.
func (w Wrapping[T]) Mul(rhs Wrapping[T]) Wrapping[T] {
	return wrappingFrom(wrap[T](exact2((*big.Int).Mul, w.value, rhs.value)))
}

// Div returns w / rhs (truncated); MinI128 / -1 wraps to MinI128. A zero
// divisor panics.
func (w Wrapping[T]) Div(rhs Wrapping[T]) Wrapping[T] {
	return wrappingFrom(wrap[T](exact2((*big.Int).Quo, w.value, rhs.value)))
}

// Rem returns w % rhs (truncated); MinI128 % -1 wraps to 0. A zero divisor
// panics.
func (w Wrapping[T]) Rem(rhs Wrapping[T]) Wrapping[T] {
	return wrappingFrom(wrap[T](exact2((*big.Int).Rem, w.value, rhs.value)))
}

// Neg returns the two's complement negation of w.
func (w Wrapping[T]) Neg() Wrapping[T] {
	return wrappingFrom(wrap[T](new(big.Int).Neg(w.value.AsBigInt())))
}

// Shl returns w << amt with the amount reduced modulo 128.
func (w Wrapping[T]) Shl(amt uint) Wrapping[T] {
	return Wrapping[T]{value: shlWrapped(w.value, amt)}
}

// Shr returns w >> amt with the amount reduced modulo 128.
func (w Wrapping[T]) Shr(amt uint) Wrapping[T] {
	return Wrapping[T]{value: shrWrapped(w.value, amt)}
}

// Abs returns |w|; |MinI128| wraps back to MinI128.
func (w Wrapping[T]) Abs() Wrapping[T] {
	return wrappingFrom(wrap[T](new(big.Int).Abs(w.value.AsBigInt())))
}

// Pow returns w**exp, wrapping at every step.
func (w Wrapping[T]) Pow(exp uint) Wrapping[T] {
	return wrappingFrom(pow(w.value, exp))
}

// DivEuclid returns the Euclidean quotient of w and rhs; MinI128 div -1
// wraps to MinI128. A zero divisor panics.
func (w Wrapping[T]) DivEuclid(rhs Wrapping[T]) Wrapping[T] {
	return wrappingFrom(wrap[T](exact2((*big.Int).Div, w.value, rhs.value)))
}

// RemEuclid returns the Euclidean remainder of w and rhs, always in
// [0, |rhs|). A zero divisor panics.
func (w Wrapping[T]) RemEuclid(rhs Wrapping[T]) Wrapping[T] {
	return wrappingFrom(wrap[T](exact2((*big.Int).Mod, w.value, rhs.value)))
}

// String implements fmt.Stringer.
func (w Wrapping[T]) String() string {
	return w.value.String()
}
