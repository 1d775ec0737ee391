package conv

import (
	"fmt"
	"math"
	"strconv"
)

// ParseSigned parses lit as a signed integer that fits in bits.
func ParseSigned(lit string, bits int) (int64, error) {
	v, err := strconv.ParseInt(lit, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer literal %q: %w", lit, err)
	}
	if err := CheckSigned(v, bits); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseUnsigned parses lit as an unsigned integer that fits in bits.
func ParseUnsigned(lit string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(lit, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer literal %q: %w", lit, err)
	}
	if err := CheckUnsigned(v, bits); err != nil {
		return 0, err
	}
	return v, nil
}

// CheckSigned reports whether v fits a signed integer of the given width.
func CheckSigned(v int64, bits int) error {
	if bits < 1 || bits > 64 {
		return fmt.Errorf("unsupported width: %d", bits)
	}
	if bits == 64 {
		return nil
	}
	lo, hi := int64(-1)<<(bits-1), int64(1)<<(bits-1)-1
	if v < lo {
		return fmt.Errorf("integer overflow: %d cannot be converted to int%d (too small)", v, bits)
	}
	if v > hi {
		return fmt.Errorf("integer overflow: %d cannot be converted to int%d (too large)", v, bits)
	}
	return nil
}

// CheckUnsigned reports whether v fits an unsigned integer of the given
// width.
func CheckUnsigned(v uint64, bits int) error {
	if bits < 1 || bits > 64 {
		return fmt.Errorf("unsupported width: %d", bits)
	}
	if bits < 64 && v > uint64(1)<<bits-1 {
		return fmt.Errorf("integer overflow: %d cannot be converted to uint%d (too large)", v, bits)
	}
	return nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}
