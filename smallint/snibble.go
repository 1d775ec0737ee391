package smallint

import (
	"iter"

	"github.com/hupe1980/boundint"
)

// SNibble is a signed nibble in [-8, 7] represented as int8 but stored as
// the uint8 bit pattern of that representation.
//
// The zero value is SNibbleU0.
type SNibble struct {
	bits uint8
}

// SNibble values in ascending order. The negative ones have the larger
// stored bytes.
var (
	SNibbleN8 = SNibble{bits: 248}
	SNibbleN7 = SNibble{bits: 249}
	SNibbleN6 = SNibble{bits: 250}
	SNibbleN5 = SNibble{bits: 251}
	SNibbleN4 = SNibble{bits: 252}
	SNibbleN3 = SNibble{bits: 253}
	SNibbleN2 = SNibble{bits: 254}
	SNibbleN1 = SNibble{bits: 255}
	SNibbleU0 = SNibble{bits: 0}
	SNibbleP1 = SNibble{bits: 1}
	SNibbleP2 = SNibble{bits: 2}
	SNibbleP3 = SNibble{bits: 3}
	SNibbleP4 = SNibble{bits: 4}
	SNibbleP5 = SNibble{bits: 5}
	SNibbleP6 = SNibble{bits: 6}
	SNibbleP7 = SNibble{bits: 7}
)

var sNibbleKind = boundint.MustKind[SNibble, int8]("SNibble",
	func(i int) SNibble { return SNibble{bits: uint8(int8(i - 8))} },
	func(n SNibble) int { return int(int8(n.bits)) + 8 },
	boundint.Variant[int8]{Name: "N8", Repr: -8},
	boundint.Variant[int8]{Name: "N7", Repr: -7},
	boundint.Variant[int8]{Name: "N6", Repr: -6},
	boundint.Variant[int8]{Name: "N5", Repr: -5},
	boundint.Variant[int8]{Name: "N4", Repr: -4},
	boundint.Variant[int8]{Name: "N3", Repr: -3},
	boundint.Variant[int8]{Name: "N2", Repr: -2},
	boundint.Variant[int8]{Name: "N1", Repr: -1},
	boundint.Variant[int8]{Name: "U0", Repr: 0},
	boundint.Variant[int8]{Name: "P1", Repr: 1},
	boundint.Variant[int8]{Name: "P2", Repr: 2},
	boundint.Variant[int8]{Name: "P3", Repr: 3},
	boundint.Variant[int8]{Name: "P4", Repr: 4},
	boundint.Variant[int8]{Name: "P5", Repr: 5},
	boundint.Variant[int8]{Name: "P6", Repr: 6},
	boundint.Variant[int8]{Name: "P7", Repr: 7},
)

// SNibbleKind returns the descriptor of SNibble.
func SNibbleKind() *boundint.Kind[SNibble, int8] { return sNibbleKind }

// SNibbleFromRepr returns the SNibble whose representation is r.
func SNibbleFromRepr(r int8) (SNibble, bool) { return sNibbleKind.FromRepr(r) }

// SNibbleMin returns SNibbleN8.
func SNibbleMin() SNibble { return sNibbleKind.Min() }

// SNibbleMax returns SNibbleP7.
func SNibbleMax() SNibble { return sNibbleKind.Max() }

// SNibbleValues iterates from SNibbleN8 to SNibbleP7.
func SNibbleValues() iter.Seq[SNibble] { return sNibbleKind.All() }

// Repr returns the int8 value of n, not its stored byte.
func (n SNibble) Repr() int8 { return sNibbleKind.ToRepr(n) }

func (n SNibble) String() string { return sNibbleKind.VariantName(n) }

// Compare orders by value: SNibbleN8 sorts before SNibbleU0 although its
// stored byte is larger.
func (n SNibble) Compare(o SNibble) int { return sNibbleKind.Compare(n, o) }

// Less reports whether n orders before o by value.
func (n SNibble) Less(o SNibble) bool { return sNibbleKind.Less(n, o) }

// Checked arithmetic.

func (n SNibble) CheckedAdd(o SNibble) (SNibble, bool) { return sNibbleKind.CheckedAdd(n, o) }
func (n SNibble) CheckedSub(o SNibble) (SNibble, bool) { return sNibbleKind.CheckedSub(n, o) }
func (n SNibble) CheckedMul(o SNibble) (SNibble, bool) { return sNibbleKind.CheckedMul(n, o) }
func (n SNibble) CheckedDiv(o SNibble) (SNibble, bool) { return sNibbleKind.CheckedDiv(n, o) }
func (n SNibble) CheckedRem(o SNibble) (SNibble, bool) { return sNibbleKind.CheckedRem(n, o) }
func (n SNibble) CheckedNeg() (SNibble, bool)          { return sNibbleKind.CheckedNeg(n) }

func (n SNibble) CheckedAddRepr(r int8) (SNibble, bool) { return sNibbleKind.CheckedAddRepr(n, r) }
func (n SNibble) CheckedSubRepr(r int8) (SNibble, bool) { return sNibbleKind.CheckedSubRepr(n, r) }
func (n SNibble) CheckedMulRepr(r int8) (SNibble, bool) { return sNibbleKind.CheckedMulRepr(n, r) }
func (n SNibble) CheckedDivRepr(r int8) (SNibble, bool) { return sNibbleKind.CheckedDivRepr(n, r) }
func (n SNibble) CheckedRemRepr(r int8) (SNibble, bool) { return sNibbleKind.CheckedRemRepr(n, r) }

// Saturating arithmetic.

func (n SNibble) SaturatingAdd(o SNibble) SNibble { return sNibbleKind.SaturatingAdd(n, o) }
func (n SNibble) SaturatingSub(o SNibble) SNibble { return sNibbleKind.SaturatingSub(n, o) }
func (n SNibble) SaturatingMul(o SNibble) SNibble { return sNibbleKind.SaturatingMul(n, o) }

func (n SNibble) SaturatingAddRepr(r int8) SNibble { return sNibbleKind.SaturatingAddRepr(n, r) }
func (n SNibble) SaturatingSubRepr(r int8) SNibble { return sNibbleKind.SaturatingSubRepr(n, r) }
func (n SNibble) SaturatingMulRepr(r int8) SNibble { return sNibbleKind.SaturatingMulRepr(n, r) }

// Operators. These panic with a *boundint.OverflowError on overflow.

func (n SNibble) Add(o SNibble) SNibble { return sNibbleKind.Add(n, o) }
func (n SNibble) Sub(o SNibble) SNibble { return sNibbleKind.Sub(n, o) }
func (n SNibble) Mul(o SNibble) SNibble { return sNibbleKind.Mul(n, o) }
func (n SNibble) Div(o SNibble) SNibble { return sNibbleKind.Div(n, o) }
func (n SNibble) Rem(o SNibble) SNibble { return sNibbleKind.Rem(n, o) }
func (n SNibble) Neg() SNibble          { return sNibbleKind.Neg(n) }

func (n SNibble) AddRepr(r int8) SNibble { return sNibbleKind.AddRepr(n, r) }
func (n SNibble) SubRepr(r int8) SNibble { return sNibbleKind.SubRepr(n, r) }
func (n SNibble) MulRepr(r int8) SNibble { return sNibbleKind.MulRepr(n, r) }
func (n SNibble) DivRepr(r int8) SNibble { return sNibbleKind.DivRepr(n, r) }
func (n SNibble) RemRepr(r int8) SNibble { return sNibbleKind.RemRepr(n, r) }

// Encoding.

func (n SNibble) MarshalJSON() ([]byte, error)     { return sNibbleKind.MarshalJSON(n) }
func (n *SNibble) UnmarshalJSON(data []byte) error { return sNibbleKind.UnmarshalJSON(data, n) }
func (n SNibble) MarshalText() ([]byte, error)     { return sNibbleKind.MarshalText(n) }
func (n *SNibble) UnmarshalText(text []byte) error { return sNibbleKind.UnmarshalText(text, n) }
