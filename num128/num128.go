package num128

import (
	"math/big"

	num "github.com/shabbyrobe/go-num"
)

type (
	// U128 is the unsigned 128-bit element type, re-exported from go-num.
	U128 = num.U128
	// I128 is the signed 128-bit element type, re-exported from go-num.
	I128 = num.I128
)

// Elem constrains the element types the 128-bit policy wrappers operate
// on: exactly num.U128 and num.I128.
type Elem[T any] interface {
	num.U128 | num.I128
	AsBigInt() *big.Int
	Cmp(n T) int
	String() string
}

// U128From64 lifts a uint64 into the unsigned 128-bit element type.
func U128From64(v uint64) U128 { return num.U128From64(v) }

// I128From64 lifts an int64 into the signed 128-bit element type.
func I128From64(v int64) I128 { return num.I128From64(v) }

// U128FromRaw assembles an unsigned 128-bit element from its halves.
func U128FromRaw(hi, lo uint64) U128 { return num.U128FromRaw(hi, lo) }

// MaxU128 returns the maximum representable U128.
func MaxU128() U128 { return num.U128FromRaw(^uint64(0), ^uint64(0)) }

// MinI128 returns the minimum representable I128.
func MinI128() I128 { return fromBig[I128](minI128) }

// MaxI128 returns the maximum representable I128.
func MaxI128() I128 { return fromBig[I128](maxI128) }

const bits128 = 128

var (
	bigOne    = big.NewInt(1)
	bigZero   = big.NewInt(0)
	bigNegOne = big.NewInt(-1)
	mod128    = new(big.Int).Lsh(bigOne, bits128)
	maxU128   = new(big.Int).Sub(mod128, bigOne)
	minI128   = new(big.Int).Neg(new(big.Int).Lsh(bigOne, bits128-1))
	maxI128   = new(big.Int).Sub(new(big.Int).Lsh(bigOne, bits128-1), bigOne)
)

// boundsOf returns the representable range of T.
func boundsOf[T Elem[T]]() (min, max *big.Int) {
	var zero T
	if _, signed := any(zero).(num.I128); signed {
		return minI128, maxI128
	}
	return bigZero, maxU128
}

// fromBig converts a representable big.Int into T.
func fromBig[T Elem[T]](v *big.Int) T {
	var zero T
	if _, signed := any(zero).(num.I128); signed {
		out, _ := num.I128FromBigInt(v)
		return any(out).(T)
	}
	out, _ := num.U128FromBigInt(v)
	return any(out).(T)
}

// wrap reduces the exact result into T's range, reporting whether it was
// already representable.
func wrap[T Elem[T]](exact *big.Int) (T, bool) {
	min, max := boundsOf[T]()
	if exact.Cmp(min) >= 0 && exact.Cmp(max) <= 0 {
		return fromBig[T](exact), true
	}
	r := new(big.Int).Mod(exact, mod128)
	if r.Cmp(max) > 0 {
		r.Sub(r, mod128)
	}
	return fromBig[T](r), false
}

// clamp bounds the exact result to T's range.
func clamp[T Elem[T]](exact *big.Int) T {
	min, max := boundsOf[T]()
	if exact.Cmp(min) < 0 {
		return fromBig[T](min)
	}
	if exact.Cmp(max) > 0 {
		return fromBig[T](max)
	}
	return fromBig[T](exact)
}

// exact2 computes a binary big.Int operation on two elements. Division
// operations panic on a zero divisor, like raw integer division.
func exact2[T Elem[T]](op func(z, x, y *big.Int) *big.Int, a, b T) *big.Int {
	return op(new(big.Int), a.AsBigInt(), b.AsBigInt())
}

// shlWrapped computes a << amt with the amount reduced modulo 128.
func shlWrapped[T Elem[T]](a T, amt uint) T {
	v, _ := wrap[T](new(big.Int).Lsh(a.AsBigInt(), amt%bits128))
	return v
}

// shrWrapped computes a >> amt with the amount reduced modulo 128. The
// shift is arithmetic for I128.
func shrWrapped[T Elem[T]](a T, amt uint) T {
	v, _ := wrap[T](new(big.Int).Rsh(a.AsBigInt(), amt%bits128))
	return v
}

// remOverflows reports the one remainder overflow, MinI128 rem -1. Its
// true value is zero, but it is flagged to stay aligned with the native
// widths, where the internal division overflows.
func remOverflows[T Elem[T]](a, b T) bool {
	min, _ := boundsOf[T]()
	return min.Sign() != 0 &&
		a.AsBigInt().Cmp(min) == 0 &&
		b.AsBigInt().Cmp(bigNegOne) == 0
}

// pow computes the wrapped value of a**exp, reporting whether the true
// result was representable.
func pow[T Elem[T]](a T, exp uint) (T, bool) {
	ab := a.AsBigInt()
	if ab.CmpAbs(bigOne) <= 0 {
		return wrap[T](smallPow(ab, exp))
	}
	e := new(big.Int).SetUint64(uint64(exp))
	if exp <= bits128 {
		return wrap[T](new(big.Int).Exp(ab, e, nil))
	}
	// |base| >= 2 and exp > 128: the true result cannot be representable;
	// compute only the wrapped bits, modularly.
	_, max := boundsOf[T]()
	base := new(big.Int).Mod(ab, mod128)
	r := new(big.Int).Exp(base, e, mod128)
	if r.Cmp(max) > 0 {
		r.Sub(r, mod128)
	}
	return fromBig[T](r), false
}

// smallPow handles bases in {-1, 0, 1}, whose powers never grow.
func smallPow(base *big.Int, exp uint) *big.Int {
	switch {
	case exp == 0:
		return big.NewInt(1)
	case base.Sign() == 0:
		return big.NewInt(0)
	case base.Sign() > 0:
		return big.NewInt(1)
	case exp&1 == 0:
		return big.NewInt(1)
	default:
		return big.NewInt(-1)
	}
}
