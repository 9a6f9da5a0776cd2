package intops

// WrappingAdd computes a + b, wrapping around at the boundary of T.
func WrappingAdd[T Integer](a, b T) T { return a + b }

// WrappingSub computes a - b, wrapping around at the boundary of T.
func WrappingSub[T Integer](a, b T) T { return a - b }

// WrappingMul computes a * b, wrapping around at the boundary of T.
func WrappingMul[T Integer](a, b T) T { return a * b }

// WrappingDiv computes a / b; the one wrapping case is MinOf / -1, which
// yields MinOf. A zero divisor panics.
func WrappingDiv[T Integer](a, b T) T { return a / b }

// WrappingRem computes a % b; the one wrapping case is MinOf % -1, which
// yields 0. A zero divisor panics.
func WrappingRem[T Integer](a, b T) T { return a % b }

// WrappingNeg computes the two's complement negation of a. For signed
// types -MinOf wraps back to MinOf.
func WrappingNeg[T Integer](a T) T { return -a }

// WrappingShl computes a << amt with the shift amount reduced modulo the
// bit width of T.
func WrappingShl[T Integer](a T, amt uint) T {
	return a << (amt % BitsOf[T]())
}

// WrappingShr computes a >> amt with the shift amount reduced modulo the
// bit width of T. The shift is arithmetic for signed types.
func WrappingShr[T Integer](a T, amt uint) T {
	return a >> (amt % BitsOf[T]())
}

// WrappingAbs computes the absolute value of a; |MinOf| wraps back to
// MinOf for signed types.
func WrappingAbs[T Integer](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// WrappingPow computes base**exp by exponentiation by squaring, wrapping
// at every step.
func WrappingPow[T Integer](base T, exp uint) T {
	acc := T(1)
	for exp > 0 {
		if exp&1 == 1 {
			acc *= base
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		base *= base
	}
	return acc
}

// WrappingDivEuclid computes the Euclidean quotient of a and b; the one
// wrapping case is MinOf div -1, which yields MinOf. A zero divisor panics.
func WrappingDivEuclid[T Integer](a, b T) T {
	q := a / b
	if a%b < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}
	return q
}

// WrappingRemEuclid computes the Euclidean remainder of a and b, always in
// [0, |b|). A zero divisor panics.
func WrappingRemEuclid[T Integer](a, b T) T {
	return euclidRemap(a%b, b)
}
