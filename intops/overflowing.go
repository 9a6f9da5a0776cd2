package intops

// OverflowingAdd computes the wrapping sum of a and b, and reports whether
// the true sum exceeded the range of T.
func OverflowingAdd[T Integer](a, b T) (T, bool) {
	sum := a + b
	return sum, (b > 0 && sum < a) || (b < 0 && sum > a)
}

// OverflowingSub computes the wrapping difference of a and b, and reports
// whether the true difference exceeded the range of T.
func OverflowingSub[T Integer](a, b T) (T, bool) {
	diff := a - b
	return diff, (b > 0 && diff > a) || (b < 0 && diff < a)
}

// OverflowingMul computes the wrapping product of a and b, and reports
// whether the true product exceeded the range of T.
func OverflowingMul[T Integer](a, b T) (T, bool) {
	_, ok := CheckedMul(a, b)
	return a * b, !ok
}

// OverflowingDiv computes a / b; MinOf / -1 wraps to MinOf with the flag
// set. A zero divisor panics.
func OverflowingDiv[T Integer](a, b T) (T, bool) {
	q := a / b
	return q, divOverflows(a, b)
}

// OverflowingRem computes a % b; MinOf % -1 wraps to 0 with the flag set.
// A zero divisor panics.
func OverflowingRem[T Integer](a, b T) (T, bool) {
	r := a % b
	return r, divOverflows(a, b)
}

// OverflowingNeg computes the two's complement negation of a, flagging
// -MinOf for signed types and any nonzero value for unsigned types.
func OverflowingNeg[T Integer](a T) (T, bool) {
	_, ok := CheckedNeg(a)
	return -a, !ok
}

// OverflowingShl computes a << amt with the amount reduced modulo the bit
// width of T, flagging amounts at or beyond the width.
func OverflowingShl[T Integer](a T, amt uint) (T, bool) {
	bits := BitsOf[T]()
	return a << (amt % bits), amt >= bits
}

// OverflowingShr computes a >> amt with the amount reduced modulo the bit
// width of T, flagging amounts at or beyond the width. The shift is
// arithmetic for signed types.
func OverflowingShr[T Integer](a T, amt uint) (T, bool) {
	bits := BitsOf[T]()
	return a >> (amt % bits), amt >= bits
}

// OverflowingAbs computes the absolute value of a; |MinOf| wraps back to
// MinOf with the flag set.
func OverflowingAbs[T Integer](a T) (T, bool) {
	if a < 0 {
		return OverflowingNeg(a)
	}
	return a, false
}

// OverflowingPow computes the wrapping value of base**exp, flagging any
// overflow along the squaring chain.
func OverflowingPow[T Integer](base T, exp uint) (T, bool) {
	acc, overflowed := T(1), false
	for exp > 0 {
		var ovf bool
		if exp&1 == 1 {
			acc, ovf = OverflowingMul(acc, base)
			overflowed = overflowed || ovf
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		base, ovf = OverflowingMul(base, base)
		overflowed = overflowed || ovf
	}
	return acc, overflowed
}

// OverflowingDivEuclid computes the Euclidean quotient of a and b; MinOf
// div -1 wraps to MinOf with the flag set. A zero divisor panics.
func OverflowingDivEuclid[T Integer](a, b T) (T, bool) {
	return WrappingDivEuclid(a, b), divOverflows(a, b)
}

// OverflowingRemEuclid computes the Euclidean remainder of a and b; MinOf
// rem -1 wraps to 0 with the flag set. A zero divisor panics.
func OverflowingRemEuclid[T Integer](a, b T) (T, bool) {
	return WrappingRemEuclid(a, b), divOverflows(a, b)
}
