// Package smallint provides small bounded integer types.
//
// Bit, Trit, UNibble, NZUNibble and Nibble are generated by boundgen from
// boundgen.yaml. Each stores its ordinal, so its zero value is its minimum:
// a zero NZUNibble is NZUNibbleU1. Trit encodes JSON with encoding/json,
// the others with the default codec.
//
// SNibble is written by hand and stores each value as the two's-complement
// bit pattern of its int8 representation, so SNibbleN8 holds the byte 248
// and the zero value is SNibbleU0. The stored order is therefore not the
// numeric order; Compare and Less follow the representation.
package smallint

//go:generate go run ../cmd/boundgen -config boundgen.yaml
