package overflow

import (
	"cmp"
	"fmt"

	"github.com/hupe1980/overflow/intops"
)

// Checked marks an integer for checked-overflow arithmetic.
//
// Every operation detects overflow; an overflowing result invalidates the
// wrapper, and an invalid wrapper stays invalid under all further
// arithmetic without attempting any computation. Invalidation is only
// reversed by re-construction from a fresh integer (AsChecked or Or).
//
// The zero value is invalid. Two invalid instances compare equal under ==;
// an invalid instance never equals a valid one.
type Checked[T intops.Integer] struct {
	value T
	ok    bool
}

// checkedFrom turns an intops (result, ok) pair into a wrapper, zeroing
// the payload on overflow so == keeps the documented comparison rule.
func checkedFrom[T intops.Integer](v T, ok bool) Checked[T] {
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

// Unwrap returns the held value, panicking with ErrInvalidValue if it has
// been invalidated.
func (c Checked[T]) Unwrap() T {
	if !c.ok {
		panic(ErrInvalidValue)
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

// Cmp orders two checked values. When both are valid it returns the usual
// -1/0/+1 with ok true; two invalid values are equal; a valid and an
// invalid value are incomparable (ok false).
func (c Checked[T]) Cmp(rhs Checked[T]) (int, bool) {
	switch {
	case c.ok && rhs.ok:
		return cmp.Compare(c.value, rhs.value), true
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
	return checkedFrom(intops.CheckedAdd(c.value, rhs.value))
}

// Sub returns c - rhs, invalid on overflow or if either operand is invalid.
func (c Checked[T]) Sub(rhs Checked[T]) Checked[T] {
	if !c.ok || !rhs.ok {
		return Checked[T]{}
	}
	return checkedFrom(intops.CheckedSub(c.value, rhs.value))
}

// Mul returns c * rhs, invalid on overflow or if either operand is invalid.
func (c Checked[T]) Mul(rhs Checked[T]) Checked[T] {
	if !c.ok || !rhs.ok {
		return Checked[T]{}
	}
	return checkedFrom(intops.CheckedMul(c.value, rhs.value))
}

// Div returns c / rhs, invalid on overflow or if either operand is invalid.
// A zero divisor panics unless the computation is short-circuited by an
// invalid operand.
func (c Checked[T]) Div(rhs Checked[T]) Checked[T] {
	if !c.ok || !rhs.ok {
		return Checked[T]{}
	}
	return checkedFrom(intops.CheckedDiv(c.value, rhs.value))
}

// Rem returns c % rhs, invalid on overflow or if either operand is invalid.
// A zero divisor panics unless the computation is short-circuited by an
// invalid operand.
func (c Checked[T]) Rem(rhs Checked[T]) Checked[T] {
	if !c.ok || !rhs.ok {
		return Checked[T]{}
	}
	return checkedFrom(intops.CheckedRem(c.value, rhs.value))
}

// Neg returns -c, invalid on overflow or if c is invalid.
func (c Checked[T]) Neg() Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return checkedFrom(intops.CheckedNeg(c.value))
}

// Shl returns c << amt, invalid when amt is at least the bit width of T or
// if c is invalid.
func (c Checked[T]) Shl(amt uint) Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return checkedFrom(intops.CheckedShl(c.value, amt))
}

// Shr returns c >> amt, invalid when amt is at least the bit width of T or
// if c is invalid.
func (c Checked[T]) Shr(amt uint) Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return checkedFrom(intops.CheckedShr(c.value, amt))
}

// Abs returns |c|, invalid on overflow or if c is invalid.
func (c Checked[T]) Abs() Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return checkedFrom(intops.CheckedAbs(c.value))
}

// Pow returns c**exp, invalid on overflow or if c is invalid.
func (c Checked[T]) Pow(exp uint) Checked[T] {
	if !c.ok {
		return Checked[T]{}
	}
	return checkedFrom(intops.CheckedPow(c.value, exp))
}

// DivEuclid returns the Euclidean quotient of c and rhs, invalid on
// overflow or if either operand is invalid.
func (c Checked[T]) DivEuclid(rhs Checked[T]) Checked[T] {
	if !c.ok || !rhs.ok {
		return Checked[T]{}
	}
	return checkedFrom(intops.CheckedDivEuclid(c.value, rhs.value))
}

// RemEuclid returns the Euclidean remainder of c and rhs, invalid on
// overflow or if either operand is invalid.
func (c Checked[T]) RemEuclid(rhs Checked[T]) Checked[T] {
	if !c.ok || !rhs.ok {
		return Checked[T]{}
	}
	return checkedFrom(intops.CheckedRemEuclid(c.value, rhs.value))
}

// String implements fmt.Stringer, rendering invalidated values as
// "invalid".
func (c Checked[T]) String() string {
	if !c.ok {
		return "invalid"
	}
	return fmt.Sprintf("%d", c.value)
}
