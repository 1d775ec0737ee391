// Package boundint provides bounded integer types: integer types whose
// values are restricted to a contiguous range [min, max] of an underlying
// fixed-width representation.
//
// A bounded type is an opaque struct with a single unexported field,
// paired with a Kind, an immutable descriptor built from the type's ordered
// variant table. Outside its own package a value can only come from the
// Kind, one of the declared variant variables or the zero value, which is
// always a valid value: the minimum for generated types. Native integer
// operators and conversions do not apply, so they cannot bypass the
// bounds. The Kind implements the whole contract (conversion, checked,
// saturating and panicking arithmetic, ordering, encoding) and concrete
// types delegate to it, usually through code produced by cmd/boundgen.
//
// # Quick Start
//
// Generated types are used like plain integers with explicit overflow
// handling:
//
//	v, ok := smallint.NibbleP4.CheckedMul(smallint.NibbleP2) // ok == false
//	s := smallint.NibbleP4.SaturatingMul(smallint.NibbleP2)  // NibbleP7
//	p := smallint.TritP1.Add(smallint.TritP1)                // panics
//
// A type can also be declared without generated code:
//
//	type Percent struct{ ord uint8 }
//
//	k, err := boundint.NewRangeKind[Percent, uint8]("Percent", 0, 100,
//		func(i int) Percent { return Percent{ord: uint8(i)} },
//		func(p Percent) int { return int(p.ord) },
//	)
//
// # Representations
//
// The representation R is one of int8 ... int64 or uint8 ... uint64. A
// Kind never looks at how a type stores its values: it maps them to
// ordinals through the two functions given to NewKind, and the ordinal i
// stands for the representation MinRepr + i. Bounds checks and ordering
// always use R, never the stored bits.
//
// Code inside the package declaring a type can still build a value that is
// not a variant. Checked operations report false for it, the other
// arithmetic methods and ToRepr panic with a *RangeError, and encoding
// fails with a *RangeError.
//
// # Arithmetic
//
// Every binary operation comes in three flavours, each with a variant
// taking a raw representation as the right operand:
//
//   - CheckedX returns (result, false) when the exact result leaves the
//     bounds of the type or does not fit R.
//   - SaturatingX clamps to Min or Max by the sign of the operands.
//   - X panics with an *OverflowError, which wraps ErrOverflow.
//
// Division truncates toward zero. A zero divisor always fails, as does
// the minimum of a signed representation divided by, or taken modulo, -1.
//
// # Encoding
//
// Values encode to JSON as their representation number through a codec
// from the codec package, and to text as their variant name. A JSON null
// leaves the destination untouched.
//
// # Collections
//
// Set stores values of one bounded type in a roaring bitmap indexed by
// ordinal.
package boundint
