package num128

import "math/big"

// Saturating marks a 128-bit integer for saturating-overflow arithmetic.
// Semantics match overflow.Saturating: out-of-range results clamp to the
// nearer bound, and negation and shifts are deliberately absent.
type Saturating[T Elem[T]] struct {
	value T
}

// Value returns the held integer.
func (s Saturating[T]) Value() T {
	return s.value
}

// Add returns s + rhs, clamping to the boundary of T.
func (s Saturating[T]) Add(rhs Saturating[T]) Saturating[T] {
	return Saturating[T]{clamp[T](exact2((*big.Int).Add, s.value, rhs.value))}
}

// Sub returns s - rhs, clamping to the boundary of T.
func (s Saturating[T]) Sub(rhs Saturating[T]) Saturating[T] {
	return Saturating[T]{clamp[T](exact2((*big.Int).Sub, s.value, rhs.value))}
}

// Mul returns s * rhs, clamping to the boundary of T.
func (s Saturating[T]) Mul(rhs Saturating[T]) Saturating[T] {
	return Saturating[T]{clamp[T](exact2((*big.Int).Mul, s.value, rhs.value))}
}

// Div returns s / rhs (truncated); MinI128 / -1 clamps to MaxI128. A zero
// divisor panics.
func (s Saturating[T]) Div(rhs Saturating[T]) Saturating[T] {
	return Saturating[T]{clamp[T](exact2((*big.Int).Quo, s.value, rhs.value))}
}

// Rem returns s % rhs (truncated); the true remainder is always
// representable. A zero divisor panics.
func (s Saturating[T]) Rem(rhs Saturating[T]) Saturating[T] {
	return Saturating[T]{clamp[T](exact2((*big.Int).Rem, s.value, rhs.value))}
}

// Abs returns |s|; |MinI128| clamps to MaxI128.
func (s Saturating[T]) Abs() Saturating[T] {
	return Saturating[T]{clamp[T](new(big.Int).Abs(s.value.AsBigInt()))}
}

// Pow returns s**exp, clamping to the exceeded bound: the minimum for a
// negative base raised to an odd exponent, the maximum otherwise.
func (s Saturating[T]) Pow(exp uint) Saturating[T] {
	if v, ok := pow(s.value, exp); ok {
		return Saturating[T]{v}
	}
	min, max := boundsOf[T]()
	if s.value.AsBigInt().Sign() < 0 && exp&1 == 1 {
		return Saturating[T]{fromBig[T](min)}
	}
	return Saturating[T]{fromBig[T](max)}
}

// DivEuclid returns the Euclidean quotient of s and rhs; MinI128 div -1
// clamps to MaxI128. A zero divisor panics.
func (s Saturating[T]) DivEuclid(rhs Saturating[T]) Saturating[T] {
	return Saturating[T]{clamp[T](exact2((*big.Int).Div, s.value, rhs.value))}
}

// RemEuclid returns the Euclidean remainder of s and rhs, always in
// [0, |rhs|). A zero divisor panics.
func (s Saturating[T]) RemEuclid(rhs Saturating[T]) Saturating[T] {
	return Saturating[T]{clamp[T](exact2((*big.Int).Mod, s.value, rhs.value))}
}

// String implements fmt.Stringer.
func (s Saturating[T]) String() string {
	return s.value.String()
}
