package boundint

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/hupe1980/boundint/codec"
)

var jsonNull = []byte("null")

// MarshalJSON encodes t as its representation number using the Kind's
// codec. Values that are not variants fail with a *RangeError.
func (k *Kind[T, R]) MarshalJSON(t T) ([]byte, error) {
	r, ok := k.reprOf(t)
	if !ok {
		return nil, k.rangeError(r)
	}
	return codec.MarshalRepr(k.codec, r)
}

// UnmarshalJSON decodes a representation number into dst. Numbers outside
// the bounds of the type fail with a *RangeError, even when they would not
// fit R; dst is left untouched on error. Like encoding/json, null is a
// no-op.
func (k *Kind[T, R]) UnmarshalJSON(data []byte, dst *T) error {
	if bytes.Equal(data, jsonNull) {
		return nil
	}

	r, err := codec.UnmarshalRepr[R](k.codec, data)
	if err != nil {
		var nre *codec.RangeError
		if errors.As(err, &nre) {
			return &RangeError{Type: k.name, Value: nre.Number, Min: k.min, Max: k.max}
		}
		return fmt.Errorf("%s: %w", k.name, err)
	}

	v, err := k.Parse(r)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// MarshalText encodes t as its variant name.
func (k *Kind[T, R]) MarshalText(t T) ([]byte, error) {
	i, ok := k.Ordinal(t)
	if !ok {
		return nil, k.rangeError(k.reprAt(i))
	}
	return []byte(k.names[i]), nil
}

// UnmarshalText decodes a variant name into dst.
func (k *Kind[T, R]) UnmarshalText(text []byte, dst *T) error {
	v, ok := k.Lookup(string(text))
	if !ok {
		return fmt.Errorf("%s: unknown variant %q: %w", k.name, text, ErrOutOfRange)
	}
	*dst = v
	return nil
}
