package boundint

import "github.com/hupe1980/boundint/repr"

// SaturatingAdd returns a + b, clamped to Max when b is non-negative and to
// Min otherwise.
func (k *Kind[T, R]) SaturatingAdd(a, b T) T { return k.SaturatingAddRepr(a, k.mustRepr(b)) }

// SaturatingSub returns a - b, clamped to Min when b is non-negative and to
// Max otherwise.
func (k *Kind[T, R]) SaturatingSub(a, b T) T { return k.SaturatingSubRepr(a, k.mustRepr(b)) }

// SaturatingMul returns a * b, clamped to Max when the operands share a sign
// and to Min otherwise.
func (k *Kind[T, R]) SaturatingMul(a, b T) T { return k.SaturatingMulRepr(a, k.mustRepr(b)) }

// SaturatingAddRepr returns a + r with the clamping of SaturatingAdd.
//
// Like ToRepr, the saturating methods panic with a *RangeError when an
// operand is not a variant.
func (k *Kind[T, R]) SaturatingAddRepr(a T, r R) T {
	if v, ok := repr.CheckedAdd(k.mustRepr(a), r); ok {
		if t, ok := k.FromRepr(v); ok {
			return t
		}
	}
	if repr.IsNegative(r) {
		return k.Min()
	}
	return k.Max()
}

// SaturatingSubRepr returns a - r with the clamping of SaturatingSub.
func (k *Kind[T, R]) SaturatingSubRepr(a T, r R) T {
	if v, ok := repr.CheckedSub(k.mustRepr(a), r); ok {
		if t, ok := k.FromRepr(v); ok {
			return t
		}
	}
	if repr.IsNegative(r) {
		return k.Max()
	}
	return k.Min()
}

// SaturatingMulRepr returns a * r with the clamping of SaturatingMul.
func (k *Kind[T, R]) SaturatingMulRepr(a T, r R) T {
	ra := k.mustRepr(a)
	if v, ok := repr.CheckedMul(ra, r); ok {
		if t, ok := k.FromRepr(v); ok {
			return t
		}
	}
	if repr.IsNegative(ra) == repr.IsNegative(r) {
		return k.Max()
	}
	return k.Min()
}
