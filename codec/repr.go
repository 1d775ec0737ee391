package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/boundint/repr"
)

var (
	// ErrNotInteger is wrapped when the input is valid JSON but not an
	// integer literal: a string, null, a fraction or an exponent.
	ErrNotInteger = errors.New("not an integer")

	// ErrRange is wrapped by every RangeError.
	ErrRange = errors.New("number out of range")
)

// RangeError reports an integer literal that does not fit the
// representation it is decoded into.
type RangeError struct {
	Number string
	Repr   string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("codec: %s overflows %s", e.Number, e.Repr)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// MarshalRepr encodes r as a JSON number. A nil c selects Default.
func MarshalRepr[R repr.Integer](c Codec, r R) ([]byte, error) {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("codec %s: %w", c.Name(), err)
	}
	return b, nil
}

// UnmarshalRepr decodes a JSON integer into R. A nil c selects Default.
func UnmarshalRepr[R repr.Integer](c Codec, data []byte) (R, error) {
	if c == nil {
		c = Default
	}
	n, err := c.Number(data)
	if err != nil {
		return 0, err
	}
	return parse[R](n.String())
}

func parse[R repr.Integer](s string) (R, error) {
	bits := repr.Bits[R]()
	if repr.IsSigned[R]() {
		v, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return 0, numberError(s, "int"+strconv.Itoa(bits), err)
		}
		return R(v), nil
	}

	name := "uint" + strconv.Itoa(bits)
	if strings.HasPrefix(s, "-") {
		// A negative integer is a range problem, a negative fraction is not.
		if _, err := strconv.ParseInt(s, 10, 64); err == nil || errors.Is(err, strconv.ErrRange) {
			return 0, &RangeError{Number: s, Repr: name}
		}
		return 0, fmt.Errorf("codec: %w: %s", ErrNotInteger, s)
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, numberError(s, name, err)
	}
	return R(v), nil
}

func numberError(s, reprName string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return &RangeError{Number: s, Repr: reprName}
	}
	return fmt.Errorf("codec: %w: %s", ErrNotInteger, s)
}

func number(c Codec, v any, err error) (json.Number, error) {
	if err != nil {
		return "", fmt.Errorf("codec %s: %w", c.Name(), err)
	}
	n, ok := v.(json.Number)
	if !ok {
		return "", fmt.Errorf("codec %s: %w: got %T", c.Name(), ErrNotInteger, v)
	}
	return n, nil
}
