package boundint

import (
	"strconv"

	"github.com/hupe1980/boundint/repr"
)

// VariantName returns the stable variant name for r: the absolute value
// prefixed with N for negatives, Z for zero and P for positives, so -3, 0
// and 3 become N3, Z0 and P3.
func VariantName[R repr.Integer](r R) string {
	switch {
	case repr.IsNegative(r):
		return "N" + magnitude(r)
	case r == 0:
		return "Z0"
	default:
		return "P" + magnitude(r)
	}
}

// LegacyVariantName returns the older naming: negatives take N, zero and
// every value of an unsigned representation take U, and positive values of
// a signed representation take P.
func LegacyVariantName[R repr.Integer](r R) string {
	switch {
	case repr.IsNegative(r):
		return "N" + magnitude(r)
	case r == 0 || !repr.IsSigned[R]():
		return "U" + magnitude(r)
	default:
		return "P" + magnitude(r)
	}
}

func magnitude[R repr.Integer](r R) string {
	if repr.IsNegative(r) {
		// ^r is -r-1 and always fits, even for the minimum value.
		return strconv.FormatUint(uint64(^r)+1, 10)
	}
	return strconv.FormatUint(uint64(r), 10)
}
