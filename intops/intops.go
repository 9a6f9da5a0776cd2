package intops

// Signed permits any signed fixed-width integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned permits any unsigned fixed-width integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer permits any fixed-width integer type.
type Integer interface {
	Signed | Unsigned
}

// BitsOf returns the width of T in bits.
func BitsOf[T Integer]() uint {
	var n uint
	for v := T(1); v != 0; v <<= 1 {
		n++
	}
	return n
}

// IsSigned reports whether T is a signed type.
func IsSigned[T Integer]() bool {
	var zero T
	return ^zero < zero
}

// MinOf returns the minimum representable value of T.
func MinOf[T Integer]() T {
	if !IsSigned[T]() {
		return 0
	}
	return T(1) << (BitsOf[T]() - 1)
}

// MaxOf returns the maximum representable value of T.
func MaxOf[T Integer]() T {
	return ^MinOf[T]()
}
