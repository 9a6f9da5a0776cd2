package num128

import "math/big"

// Overflowing marks a 128-bit integer for overflow-flagging arithmetic.
// Semantics match overflow.Overflowing: the value always equals the
// Wrapping result, and the non-accumulating flag reports whether the most
// recent operation overflowed.
type Overflowing[T Elem[T]] struct {
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

func overflowingFrom[T Elem[T]](v T, exact bool) Overflowing[T] {
	return Overflowing[T]{value: v, overflow: !exact}
}

// Add returns the wrapping sum of o and rhs, flagging overflow.
func (o Overflowing[T]) Add(rhs Overflowing[T]) Overflowing[T] {
	return overflowingFrom(wrap[T](exact2((*big.Int).Add, o.value, rhs.value)))
}

// Sub returns the wrapping difference of o and rhs, flagging overflow.
func (o Overflowing[T]) Sub(rhs Overflowing[T]) Overflowing[T] {
	return overflowingFrom(wrap[T](exact2((*big.Int).Sub, o.value, rhs.value)))
}

// Mul returns the wrapping product of o and rhs, flagging overflow.
func (o Overflowing[T]) Mul(rhs Overflowing[T]) Overflowing[T] {
	return overflowingFrom(wrap[T](exact2((*big.Int).Mul, o.value, rhs.value)))
}

// Div returns o / rhs (truncated); MinI128 / -1 wraps to MinI128 with the
// flag set. A zero divisor panics.
func (o Overflowing[T]) Div(rhs Overflowing[T]) Overflowing[T] {
	return overflowingFrom(wrap[T](exact2((*big.Int).Quo, o.value, rhs.value)))
}

// Rem returns o % rhs (truncated); MinI128 % -1 wraps to 0 with the flag
// set. A zero divisor panics.
func (o Overflowing[T]) Rem(rhs Overflowing[T]) Overflowing[T] {
	r := exact2((*big.Int).Rem, o.value, rhs.value)
	if remOverflows(o.value, rhs.value) {
		return Overflowing[T]{value: fromBig[T](r), overflow: true}
	}
	return overflowingFrom(wrap[T](r))
}

// Neg returns the two's complement negation of o, flagging overflow.
func (o Overflowing[T]) Neg() Overflowing[T] {
	return overflowingFrom(wrap[T](new(big.Int).Neg(o.value.AsBigInt())))
}

// Shl returns o << amt with the amount reduced modulo 128, flagging
// amounts at or beyond 128.
func (o Overflowing[T]) Shl(amt uint) Overflowing[T] {
	return Overflowing[T]{value: shlWrapped(o.value, amt), overflow: amt >= bits128}
}

// Shr returns o >> amt with the amount reduced modulo 128, flagging
// amounts at or beyond 128.
func (o Overflowing[T]) Shr(amt uint) Overflowing[T] {
	return Overflowing[T]{value: shrWrapped(o.value, amt), overflow: amt >= bits128}
}

// Abs returns |o|; |MinI128| wraps back to MinI128 with the flag set.
func (o Overflowing[T]) Abs() Overflowing[T] {
	return overflowingFrom(wrap[T](new(big.Int).Abs(o.value.AsBigInt())))
}

// Pow returns the wrapping value of o**exp, flagging overflow.
func (o Overflowing[T]) Pow(exp uint) Overflowing[T] {
	return overflowingFrom(pow(o.value, exp))
}

// DivEuclid returns the Euclidean quotient of o and rhs; MinI128 div -1
// wraps to MinI128 with the flag set. A zero divisor panics.
func (o Overflowing[T]) DivEuclid(rhs Overflowing[T]) Overflowing[T] {
	return overflowingFrom(wrap[T](exact2((*big.Int).Div, o.value, rhs.value)))
}

// RemEuclid returns the Euclidean remainder of o and rhs; MinI128 rem -1
// wraps to 0 with the flag set. A zero divisor panics.
func (o Overflowing[T]) RemEuclid(rhs Overflowing[T]) Overflowing[T] {
	r := exact2((*big.Int).Mod, o.value, rhs.value)
	if remOverflows(o.value, rhs.value) {
		return Overflowing[T]{value: fromBig[T](r), overflow: true}
	}
	return overflowingFrom(wrap[T](r))
}

// String implements fmt.Stringer.
func (o Overflowing[T]) String() string {
	return o.value.String()
}
