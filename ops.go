package boundint

import "github.com/hupe1980/boundint/repr"

// Add returns a + b and panics with an *OverflowError if the sum is out of
// bounds. Use CheckedAdd or SaturatingAdd where overflow is expected.
func (k *Kind[T, R]) Add(a, b T) T { return k.AddRepr(a, k.mustRepr(b)) }

// Sub returns a - b and panics on overflow.
func (k *Kind[T, R]) Sub(a, b T) T { return k.SubRepr(a, k.mustRepr(b)) }

// Mul returns a * b and panics on overflow.
func (k *Kind[T, R]) Mul(a, b T) T { return k.MulRepr(a, k.mustRepr(b)) }

// Div returns a / b and panics on overflow or a zero divisor.
func (k *Kind[T, R]) Div(a, b T) T { return k.DivRepr(a, k.mustRepr(b)) }

// Rem returns a % b and panics on overflow or a zero divisor.
func (k *Kind[T, R]) Rem(a, b T) T { return k.RemRepr(a, k.mustRepr(b)) }

// AddRepr returns a + r and panics on overflow.
func (k *Kind[T, R]) AddRepr(a T, r R) T { return k.operate(opAdd, a, r, repr.CheckedAdd[R]) }

// SubRepr returns a - r and panics on overflow.
func (k *Kind[T, R]) SubRepr(a T, r R) T { return k.operate(opSub, a, r, repr.CheckedSub[R]) }

// MulRepr returns a * r and panics on overflow.
func (k *Kind[T, R]) MulRepr(a T, r R) T { return k.operate(opMul, a, r, repr.CheckedMul[R]) }

// DivRepr returns a / r and panics on overflow or a zero divisor.
func (k *Kind[T, R]) DivRepr(a T, r R) T { return k.operate(opDiv, a, r, repr.CheckedDiv[R]) }

// RemRepr returns a % r and panics on overflow or a zero divisor.
func (k *Kind[T, R]) RemRepr(a T, r R) T { return k.operate(opRem, a, r, repr.CheckedRem[R]) }

// Neg returns -a and panics on overflow.
func (k *Kind[T, R]) Neg(a T) T {
	ra := k.mustRepr(a)
	v, ok := k.bound(repr.CheckedNeg(ra))
	if !ok {
		panic(&OverflowError{Type: k.name, Op: opNeg, Left: ra})
	}
	return v
}

const (
	opAdd = "add"
	opSub = "subtract"
	opMul = "multiply"
	opDiv = "divide"
	opRem = "calculate the remainder"
	opNeg = "negate"
)

// operate panics with a *RangeError for an operand that is not a variant
// and with an *OverflowError for a result out of bounds.
func (k *Kind[T, R]) operate(name string, a T, r R, op func(R, R) (R, bool)) T {
	ra := k.mustRepr(a)
	v, ok := k.bound(op(ra, r))
	if !ok {
		panic(&OverflowError{Type: k.name, Op: name, Left: ra, Right: r})
	}
	return v
}
