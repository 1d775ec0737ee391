package repr

import (
	"cmp"
	"unsafe"
)

// Signed is the set of signed representations.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned representations.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is the closed set of representations a bounded integer may use.
//
// Platform-sized int, uint and uintptr are deliberately absent: a bounded
// type has the same width everywhere.
type Integer interface {
	Signed | Unsigned
}

// IsSigned reports whether R is a signed representation.
func IsSigned[R Integer]() bool {
	var zero R
	return ^zero < zero
}

// Bits returns the width of R in bits.
func Bits[R Integer]() int {
	var zero R
	return int(unsafe.Sizeof(zero)) * 8
}

// MinOf returns the smallest value of R.
func MinOf[R Integer]() R {
	if IsSigned[R]() {
		return R(1) << uint(Bits[R]()-1)
	}
	return 0
}

// MaxOf returns the largest value of R.
func MaxOf[R Integer]() R {
	if IsSigned[R]() {
		return ^MinOf[R]()
	}
	return ^R(0)
}

// IsNegative reports whether r is below zero. It is always false for
// unsigned representations.
func IsNegative[R Integer](r R) bool {
	return r < 0
}

// Compare returns -1, 0 or +1 by numeric value.
func Compare[R Integer](a, b R) int {
	return cmp.Compare(a, b)
}

// CheckedAdd returns a + b.
func CheckedAdd[R Integer](a, b R) (R, bool) {
	c := a + b
	if IsSigned[R]() {
		if (b > 0 && c < a) || (b < 0 && c > a) {
			return 0, false
		}
		return c, true
	}
	if c < a {
		return 0, false
	}
	return c, true
}

// CheckedSub returns a - b.
func CheckedSub[R Integer](a, b R) (R, bool) {
	if IsSigned[R]() {
		c := a - b
		if (b > 0 && c > a) || (b < 0 && c < a) {
			return 0, false
		}
		return c, true
	}
	if b > a {
		return 0, false
	}
	return a - b, true
}

// CheckedMul returns a * b.
func CheckedMul[R Integer](a, b R) (R, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if IsSigned[R]() {
		// MinOf * -1 wraps back to MinOf and slips past the division check.
		minusOne, lowest := ^R(0), MinOf[R]()
		if (a == minusOne && b == lowest) || (b == minusOne && a == lowest) {
			return 0, false
		}
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

// CheckedDiv returns a / b truncated toward zero. It fails for a zero
// divisor and for MinOf / -1.
func CheckedDiv[R Integer](a, b R) (R, bool) {
	if !divisible(a, b) {
		return 0, false
	}
	return a / b, true
}

// CheckedRem returns a % b. It fails under the same conditions as
// CheckedDiv, including MinOf % -1 whose quotient does not fit.
func CheckedRem[R Integer](a, b R) (R, bool) {
	if !divisible(a, b) {
		return 0, false
	}
	return a % b, true
}

// CheckedNeg returns -a. It fails for MinOf of a signed representation and
// for every non-zero unsigned value.
func CheckedNeg[R Integer](a R) (R, bool) {
	if IsSigned[R]() {
		if a == MinOf[R]() {
			return 0, false
		}
		return -a, true
	}
	if a != 0 {
		return 0, false
	}
	return 0, true
}

func divisible[R Integer](a, b R) bool {
	if b == 0 {
		return false
	}
	if IsSigned[R]() && b == ^R(0) && a == MinOf[R]() {
		return false
	}
	return true
}
