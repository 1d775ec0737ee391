// Package repr provides the representation layer for bounded integers.
//
// Every bounded integer is backed by one of the eight fixed-width Go integer
// types. This package gives those widths a uniform capability set so the
// bounded-integer contract can be written once, generically:
//
//   - IsNegative reports the sign used to pick a saturation bound.
//   - CheckedAdd, CheckedSub, CheckedMul, CheckedDiv, CheckedRem and CheckedNeg
//     return the exact result and true, or the zero value and false when the
//     result does not fit the width (or the divisor is zero).
//
// Nothing in this package panics or wraps silently.
//
// # Usage
//
//	sum, ok := repr.CheckedAdd[int8](100, 27)  // 127, true
//	_, ok = repr.CheckedAdd[int8](100, 28)     // 0, false
//	_, ok = repr.CheckedNeg[uint8](3)          // 0, false
package repr
