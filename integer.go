package boundint

import "github.com/hupe1980/boundint/repr"

// Integer is the method set of a concrete bounded type T with
// representation R. Generated types implement it by delegating every method
// to their Kind; generic code can accept it instead of a Kind.
//
//	var _ boundint.Integer[smallint.Nibble, int8] = smallint.NibbleZ0
type Integer[T any, R repr.Integer] interface {
	Repr() R
	String() string
	Compare(other T) int
	Less(other T) bool

	CheckedAdd(other T) (T, bool)
	CheckedSub(other T) (T, bool)
	CheckedMul(other T) (T, bool)
	CheckedDiv(other T) (T, bool)
	CheckedRem(other T) (T, bool)
	CheckedNeg() (T, bool)

	CheckedAddRepr(other R) (T, bool)
	CheckedSubRepr(other R) (T, bool)
	CheckedMulRepr(other R) (T, bool)
	CheckedDivRepr(other R) (T, bool)
	CheckedRemRepr(other R) (T, bool)

	SaturatingAdd(other T) T
	SaturatingSub(other T) T
	SaturatingMul(other T) T
	SaturatingAddRepr(other R) T
	SaturatingSubRepr(other R) T
	SaturatingMulRepr(other R) T

	Add(other T) T
	Sub(other T) T
	Mul(other T) T
	Div(other T) T
	Rem(other T) T
	Neg() T

	AddRepr(other R) T
	SubRepr(other R) T
	MulRepr(other R) T
	DivRepr(other R) T
	RemRepr(other R) T
}

// Sum adds values with checked arithmetic and reports false as soon as a
// partial sum leaves the bounds of T. The empty sum is the value whose
// representation is zero, if T has one.
func Sum[T Integer[T, R], R repr.Integer](k *Kind[T, R], values ...T) (T, bool) {
	if len(values) == 0 {
		return k.FromRepr(0)
	}
	acc, ok := values[0], k.Valid(values[0])
	if !ok {
		return acc, false
	}
	for _, v := range values[1:] {
		if acc, ok = acc.CheckedAdd(v); !ok {
			return acc, false
		}
	}
	return acc, true
}

// Clamp returns the value of k closest to r.
func Clamp[T any, R repr.Integer](k *Kind[T, R], r R) T {
	switch {
	case r < k.MinRepr():
		return k.Min()
	case r > k.MaxRepr():
		return k.Max()
	default:
		v, _ := k.FromRepr(r)
		return v
	}
}
