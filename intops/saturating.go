package intops

// SaturatingAdd computes a + b, clamping to the boundary of T on overflow.
func SaturatingAdd[T Integer](a, b T) T {
	if sum, ok := CheckedAdd(a, b); ok {
		return sum
	}
	if b > 0 {
		return MaxOf[T]()
	}
	return MinOf[T]()
}

// SaturatingSub computes a - b, clamping to the boundary of T on overflow.
func SaturatingSub[T Integer](a, b T) T {
	if diff, ok := CheckedSub(a, b); ok {
		return diff
	}
	if b > 0 {
		return MinOf[T]()
	}
	return MaxOf[T]()
}

// SaturatingMul computes a * b, clamping to the boundary of T on overflow.
func SaturatingMul[T Integer](a, b T) T {
	if prod, ok := CheckedMul(a, b); ok {
		return prod
	}
	if (a > 0) == (b > 0) {
		return MaxOf[T]()
	}
	return MinOf[T]()
}

// SaturatingDiv computes a / b, clamping MinOf / -1 to MaxOf (the true
// quotient exceeds the upper bound by one). A zero divisor panics.
func SaturatingDiv[T Integer](a, b T) T {
	if q, ok := CheckedDiv(a, b); ok {
		return q
	}
	return MaxOf[T]()
}

// SaturatingRem computes a % b. The true remainder is always representable
// (MinOf % -1 is mathematically zero), so no clamping ever applies. A zero
// divisor panics.
func SaturatingRem[T Integer](a, b T) T {
	return a % b
}

// SaturatingAbs computes the absolute value of a; |MinOf| clamps to MaxOf
// for signed types.
func SaturatingAbs[T Integer](a T) T {
	if v, ok := CheckedAbs(a); ok {
		return v
	}
	return MaxOf[T]()
}

// SaturatingPow computes base**exp, clamping to the exceeded bound on
// overflow: MinOf for a negative base raised to an odd exponent, MaxOf
// otherwise.
func SaturatingPow[T Integer](base T, exp uint) T {
	if v, ok := CheckedPow(base, exp); ok {
		return v
	}
	if base < 0 && exp&1 == 1 {
		return MinOf[T]()
	}
	return MaxOf[T]()
}

// SaturatingDivEuclid computes the Euclidean quotient of a and b, clamping
// MinOf div -1 to MaxOf. A zero divisor panics.
func SaturatingDivEuclid[T Integer](a, b T) T {
	if q, ok := CheckedDivEuclid(a, b); ok {
		return q
	}
	return MaxOf[T]()
}

// SaturatingRemEuclid computes the Euclidean remainder of a and b. The true
// remainder is always representable (MinOf rem -1 is mathematically zero),
// so no clamping ever applies. A zero divisor panics.
func SaturatingRemEuclid[T Integer](a, b T) T {
	return euclidRemap(a%b, b)
}
