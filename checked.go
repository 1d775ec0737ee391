package boundint

import "github.com/hupe1980/boundint/repr"

// CheckedAdd returns a + b, or false if the sum leaves the bounds of the
// type or does not fit R.
func (k *Kind[T, R]) CheckedAdd(a, b T) (T, bool) { return k.checked(a, b, repr.CheckedAdd[R]) }

// CheckedSub returns a - b.
func (k *Kind[T, R]) CheckedSub(a, b T) (T, bool) { return k.checked(a, b, repr.CheckedSub[R]) }

// CheckedMul returns a * b.
func (k *Kind[T, R]) CheckedMul(a, b T) (T, bool) { return k.checked(a, b, repr.CheckedMul[R]) }

// CheckedDiv returns a / b. A divisor whose representation is zero fails.
func (k *Kind[T, R]) CheckedDiv(a, b T) (T, bool) { return k.checked(a, b, repr.CheckedDiv[R]) }

// CheckedRem returns a % b.
func (k *Kind[T, R]) CheckedRem(a, b T) (T, bool) { return k.checked(a, b, repr.CheckedRem[R]) }

// CheckedAddRepr returns a + r.
//
// The Repr variants are the basis of the arithmetic: the bounded-operand
// forms pass the representation of their right operand through.
func (k *Kind[T, R]) CheckedAddRepr(a T, r R) (T, bool) {
	return k.checkedRepr(a, r, repr.CheckedAdd[R])
}

// CheckedSubRepr returns a - r.
func (k *Kind[T, R]) CheckedSubRepr(a T, r R) (T, bool) {
	return k.checkedRepr(a, r, repr.CheckedSub[R])
}

// CheckedMulRepr returns a * r.
func (k *Kind[T, R]) CheckedMulRepr(a T, r R) (T, bool) {
	return k.checkedRepr(a, r, repr.CheckedMul[R])
}

// CheckedDivRepr returns a / r.
func (k *Kind[T, R]) CheckedDivRepr(a T, r R) (T, bool) {
	return k.checkedRepr(a, r, repr.CheckedDiv[R])
}

// CheckedRemRepr returns a % r.
func (k *Kind[T, R]) CheckedRemRepr(a T, r R) (T, bool) {
	return k.checkedRepr(a, r, repr.CheckedRem[R])
}

// CheckedNeg returns -a.
func (k *Kind[T, R]) CheckedNeg(a T) (T, bool) {
	ra, ok := k.reprOf(a)
	if !ok {
		var zero T
		return zero, false
	}
	return k.bound(repr.CheckedNeg(ra))
}

// Operands that are not variants make every checked operation fail.
func (k *Kind[T, R]) checked(a, b T, op func(R, R) (R, bool)) (T, bool) {
	rb, ok := k.reprOf(b)
	if !ok {
		var zero T
		return zero, false
	}
	return k.checkedRepr(a, rb, op)
}

func (k *Kind[T, R]) checkedRepr(a T, r R, op func(R, R) (R, bool)) (T, bool) {
	ra, ok := k.reprOf(a)
	if !ok {
		var zero T
		return zero, false
	}
	return k.bound(op(ra, r))
}

func (k *Kind[T, R]) bound(r R, ok bool) (T, bool) {
	if !ok {
		var zero T
		return zero, false
	}
	return k.FromRepr(r)
}
