// Package intops provides the per-width primitives the overflow policy
// wrappers are built on: checked, wrapping, saturating, and overflowing
// variants of the basic integer operations, implemented once as generic
// functions over every native fixed-width integer (8/16/32/64-bit signed
// and unsigned, plus the pointer-sized int, uint, and uintptr).
//
// # Variant Contracts
//
//   - Checked*: returns (result, ok); ok is false exactly when the true
//     mathematical result falls outside [MinOf, MaxOf].
//   - Wrapping*: returns the low-order bits of the true result, modulo
//     2^BitsOf, remapped into the type's representable range.
//   - Saturating*: returns the true result when representable, else the
//     nearer of MinOf/MaxOf.
//   - Overflowing*: returns the wrapping result paired with a flag that is
//     true exactly when the true result was not representable.
//
// Division and remainder by zero are not covered by any variant: they
// panic for every width, exactly like raw integer division. No saturating
// negation or shift exists; clamping has no single meaning for them.
package intops
