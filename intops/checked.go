package intops

// CheckedAdd computes a + b, reporting false on overflow.
func CheckedAdd[T Integer](a, b T) (T, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// CheckedSub computes a - b, reporting false on overflow.
func CheckedSub[T Integer](a, b T) (T, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}
	return diff, true
}

// CheckedMul computes a * b, reporting false on overflow.
func CheckedMul[T Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	min, max := MinOf[T](), MaxOf[T]()
	if (a > 0 && b > 0 && a > max/b) ||
		(a > 0 && b < 0 && b < min/a) ||
		(a < 0 && b > 0 && a < min/b) ||
		(a < 0 && b < 0 && b < max/a) {
		return 0, false
	}
	return a * b, true
}

// CheckedDiv computes a / b, reporting false on overflow. The only overflow
// is MinOf / -1 for signed types. A zero divisor panics.
func CheckedDiv[T Integer](a, b T) (T, bool) {
	q := a / b
	if divOverflows(a, b) {
		return 0, false
	}
	return q, true
}

// CheckedRem computes a % b, reporting false on overflow. The only overflow
// is MinOf % -1 for signed types. A zero divisor panics.
func CheckedRem[T Integer](a, b T) (T, bool) {
	r := a % b
	if divOverflows(a, b) {
		return 0, false
	}
	return r, true
}

// CheckedNeg computes -a, reporting false on overflow. For unsigned types
// only zero can be negated.
func CheckedNeg[T Integer](a T) (T, bool) {
	if IsSigned[T]() {
		if a == MinOf[T]() {
			return 0, false
		}
		return -a, true
	}
	if a != 0 {
		return 0, false
	}
	return 0, true
}

// CheckedShl computes a << amt, reporting false when amt is at least the
// bit width of T. Bits shifted out of range are discarded.
func CheckedShl[T Integer](a T, amt uint) (T, bool) {
	if amt >= BitsOf[T]() {
		return 0, false
	}
	return a << amt, true
}

// CheckedShr computes a >> amt, reporting false when amt is at least the
// bit width of T. The shift is arithmetic for signed types.
func CheckedShr[T Integer](a T, amt uint) (T, bool) {
	if amt >= BitsOf[T]() {
		return 0, false
	}
	return a >> amt, true
}

// CheckedAbs computes the absolute value of a, reporting false for the one
// signed value (MinOf) whose magnitude is not representable.
func CheckedAbs[T Integer](a T) (T, bool) {
	if a >= 0 {
		return a, true
	}
	return CheckedNeg(a)
}

// CheckedPow computes base**exp by exponentiation by squaring, reporting
// false on overflow.
func CheckedPow[T Integer](base T, exp uint) (T, bool) {
	acc := T(1)
	for exp > 0 {
		var ok bool
		if exp&1 == 1 {
			if acc, ok = CheckedMul(acc, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		if base, ok = CheckedMul(base, base); !ok {
			return 0, false
		}
	}
	return acc, true
}

// CheckedDivEuclid computes the Euclidean quotient of a and b, rounding
// toward negative infinity so the Euclidean remainder is non-negative.
// Reports false on overflow (MinOf div -1). A zero divisor panics.
func CheckedDivEuclid[T Integer](a, b T) (T, bool) {
	q, ok := CheckedDiv(a, b)
	if !ok {
		return 0, false
	}
	if a%b < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}
	return q, true
}

// CheckedRemEuclid computes the Euclidean remainder of a and b, always in
// [0, |b|). Reports false on overflow (MinOf rem -1). A zero divisor
// panics.
func CheckedRemEuclid[T Integer](a, b T) (T, bool) {
	r, ok := CheckedRem(a, b)
	if !ok {
		return 0, false
	}
	return euclidRemap(r, b), true
}

// divOverflows reports whether a / b is the one overflowing division,
// MinOf / -1 on a signed type.
func divOverflows[T Integer](a, b T) bool {
	min := MinOf[T]()
	return min != 0 && a == min && b == ^T(0)
}

// euclidRemap shifts a truncated remainder into [0, |b|).
func euclidRemap[T Integer](r, b T) T {
	if r < 0 {
		if b < 0 {
			r -= b
		} else {
			r += b
		}
	}
	return r
}
