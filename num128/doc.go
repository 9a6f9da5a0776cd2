// Package num128 extends the overflow policy wrappers to 128-bit
// integers, which Go does not provide natively.
//
// The element types are num.U128 and num.I128 from
// github.com/shabbyrobe/go-num, re-exported here as U128 and I128. The
// four policy wrappers mirror the root overflow package: Checked,
// Wrapping, Overflowing, and Saturating, constructed with AsChecked,
// AsWrapping, AsOverflowing, and AsSaturating.
//
// Internally every operation computes the exact mathematical result with
// math/big, reduces it modulo 2^128 into the element's range, and compares
// it against the bounds, so the policy laws hold by construction. Division
// and remainder by zero panic under every policy, exactly like the native
// widths.
package num128
