package num128

import (
	"math/big"

	"github.com/hupe1980/overflow"
)

// Checked marks a 128-bit integer for checked-overflow arithmetic.
//
// Semantics match overflow.Checked: an overflowing operation invalidates
// the value, invalidation is sticky, and two invalid instances compare
// equal under ==. The zero value is invalid.
type Checked[T Elem[T]] struct {
	value T
	ok    bool
}

func checkedFrom[T Elem[T]](v T, ok bool) Checked[T] {
	if !ok {
		return Checked[T]{}
	}
	return Checked[T]{value: v, ok: true}
}

// Get returns the held value and whether it is still valid.
func (c Checked[T]) Get() (T, bool) {
	return c.value, c.ok
}

// IsValid reports whether the value has not been invalidated by overflow.
func (c Checked[T]) IsValid() bool {
	return c.ok
}

// Unwrap returns the held value, panicking with overflow.ErrInvalidValue
// if it has been invalidated.
func (c Checked[T]) Unwrap() T {
	if !c.ok {
		panic(overflow.ErrInvalidValue)
	}
	return c.value
}

// UnwrapOr returns the held value, or def if it has been invalidated.
func (c Checked[T]) UnwrapOr(def T) T {
	if !c.ok {
		return def
	}
	return c.value
}

// Or re-arms an invalidated wrapper with v. A valid wrapper is returned
// unchanged.
func (c Checked[T]) Or(v T) Checked[T] {
	if c.ok {
		return c
	}
	return AsChecked(v)
}

// Cmp orders two checked values: -1/0/+1 with ok true when both are valid,
// equal when both are invalid, incomparable otherwise.
func (c Checked[T]) Cmp(rhs Checked[T]) (int, bool) {
	switch {
	case c.ok && rhs.ok:
		return c.value.Cmp(rhs.value), true
	case !c.ok && !rhs.ok:
		return 0, true
	default:
		return 0, false
	}
}

// Add returns c + rhs, invalid on overflow or if either operand is invalid.
func (c Checked[T]) Add(rhs Checked[T]) Checked[T] {
	if !c.ok || !rhs.ok {
		return Checked[T]{}
	}
	return checkedFrom(wrap[T](exact2((*big.Int).Add, c.value, rhs.value)))
}

// Sub returns c - rhs, invalid on overflow or if either operand is invalid.
func (c Checked[T]) Sub(rhs Checked[T]) Checked[T] {
	if !c.ok || !rhs.ok {
		return Checked[T]{}
	}
	return checkedFrom(wrap[T](exact2((*big.Int).Sub, c.value, rhs.value)))
}

// Mul returns c * rhs, invalid on overflow or if either operand is invalid.
func (c Checked[T]) Mul(rhs Checked[T]) Checked[T] {
	if !c.ok || !rhs.ok {
		return Checked[T]{}
	}
	return checkedFrom(wrap[T](exact2((*big.Int).Mul, c.value, rhs.value)))
}

// Div returns c / rhs (truncated), invalid on overflow or if either
// operand is invalid. A zero divisor panics unless short-circuited by an
// invalid operand.
func (c Checked[T]) Div(rhs Checked[T]) Checked[T] {
	if !c.ok || !rhs.ok {
		return Checked[T]{}
	}
	return checkedFrom(wrap[T](exact2((*big.Int).Quo, c.value, rhs.value)))
}

// Rem returns c % rhs (truncated), invalid on overflow or if either
// operand is invalid. A zero divisor panics unless short-circuited by an
// invalid operand.
func (c Checked[T]) Rem(rhs Checked[T]) Checked[T] {
	if !c.ok || !rhs.ok {
		return Checked[T]{}
	}
	r := exact2((*big.Int).Rem, c.value, rhs.value)
	if remOverflows(c.value, rhs.value) {
		return Checked[T]{}
	}
	return checkedFrom(wrap[T](r))
}

// Neg returns -c, invalid on overflow or if c is invalid.
func (c Checked[T]) Neg() Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return checkedFrom(wrap[T](new(big.Int).Neg(c.value.AsBigInt())))
}

// Shl returns c << amt, invalid when amt is at least 128 or if c is
// invalid. Bits shifted out of range are discarded.
func (c Checked[T]) Shl(amt uint) Checked[T] {
	if !c.ok || amt >= bits128 {
		return Checked[T]{}
	}
	return checkedFrom(shlWrapped(c.value, amt), true)
}

// Shr returns c >> amt, invalid when amt is at least 128 or if c is
// invalid.
func (c Checked[T]) Shr(amt uint) Checked[T] {
	if !c.ok || amt >= bits128 {
		return Checked[T]{}
	}
	return checkedFrom(shrWrapped(c.value, amt), true)
}

// Abs returns |c|, invalid on overflow or if c is invalid.
func (c Checked[T]) Abs() Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return checkedFrom(wrap[T](new(big.Int).Abs(c.value.AsBigInt())))
}

// Pow returns c**exp, invalid on overflow or if c is invalid.
func (c Checked[T]) Pow(exp uint) Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return checkedFrom(pow(c.value, exp))
}

// DivEuclid returns the Euclidean quotient of c and rhs, invalid on
// overflow or if either operand is invalid. A zero divisor panics unless
// short-circuited by an invalid operand.
func (c Checked[T]) DivEuclid(rhs Checked[T]) Checked[T] {
	if !c.ok || !rhs.ok {
		return Checked[T]{}
	}
	return checkedFrom(wrap[T](exact2((*big.Int).Div, c.value, rhs.value)))
}

// RemEuclid returns the Euclidean remainder of c and rhs, invalid on
// overflow or if either operand is invalid. A zero divisor panics unless
// short-circuited by an invalid operand.
func (c Checked[T]) RemEuclid(rhs Checked[T]) Checked[T] {
	if !c.ok || !rhs.ok {
		return Checked[T]{}
	}
	r := exact2((*big.Int).Mod, c.value, rhs.value)
	if remOverflows(c.value, rhs.value) {
		return Checked[T]{}
	}
	return checkedFrom(wrap[T](r))
}

// String implements fmt.Stringer, rendering invalidated values as
// "invalid".
func (c Checked[T]) String() string {
	if !c.ok {
		return "invalid"
	}
	return c.value.String()
}
