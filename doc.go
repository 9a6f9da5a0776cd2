// Package overflow provides wrappers over the Go integers with a fixed,
// type-enforced overflow behavior.
//
// Raw integer arithmetic silently wraps on overflow, and guarding every
// call site with conditional checks scatters the chosen policy through the
// code. This package makes the policy part of the value's type instead:
// lift an integer into one of four wrappers and every subsequent operation
// applies that wrapper's discipline.
//
// # Policies
//
//   - Checked: an overflowing operation invalidates the value; once
//     invalid, it stays invalid under all further arithmetic.
//   - Wrapping: results are truncated to the type's bit width, treating
//     the minimum and maximum as adjacent on a circular number line.
//   - Overflowing: results wrap exactly like Wrapping, and a separate flag
//     reports whether the most recent operation overflowed.
//   - Saturating: out-of-range results clamp to the nearer bound.
//
// # Quick Start
//
//	sum := overflow.AsWrapping(uint8(250)).Add(overflow.AsWrapping(uint8(10)))
//	fmt.Println(sum.Value()) // 4
//
//	hi := overflow.AsSaturating(uint8(250)).Add(overflow.AsSaturating(uint8(10)))
//	fmt.Println(hi.Value()) // 255
//
//	c := overflow.AsChecked(uint8(250)).Add(overflow.AsChecked(uint8(10)))
//	fmt.Println(c.IsValid()) // false
//
// # Fatal Faults
//
// Division and remainder by zero are not overflow and are not covered by
// any policy: they panic under every wrapper, exactly like raw integer
// division.
//
// The wrappers cover every native width; 128-bit integers are provided by
// the num128 subpackage. The width-level primitives the wrappers delegate
// to live in the intops subpackage.
package overflow
