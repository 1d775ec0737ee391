package codec

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codecs = []Codec{JSON{}, GoJSON{}}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
		assert.Equal(t, c, MustByName(name))
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
	assert.Panics(t, func() { MustByName("msgpack") })
}

func TestNumber(t *testing.T) {
	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			n, err := c.Number([]byte(" -18446744073709551616 "))
			require.NoError(t, err)
			assert.Equal(t, json.Number("-18446744073709551616"), n)

			for _, input := range []string{`"7"`, `null`, `true`, `[1]`} {
				_, err := c.Number([]byte(input))
				assert.ErrorIs(t, err, ErrNotInteger, input)
			}

			_, err = c.Number([]byte(`{`))
			assert.Error(t, err)
		})
	}
}

func TestMarshalRepr(t *testing.T) {
	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := MarshalRepr(c, int8(-8))
			require.NoError(t, err)
			assert.Equal(t, "-8", string(b))

			b, err = MarshalRepr(c, uint64(math.MaxUint64))
			require.NoError(t, err)
			assert.Equal(t, "18446744073709551615", string(b))
		})
	}

	b, err := MarshalRepr[int16](nil, -300)
	require.NoError(t, err)
	assert.Equal(t, "-300", string(b))
}

func TestUnmarshalRepr(t *testing.T) {
	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			i8, err := UnmarshalRepr[int8](c, []byte("-128"))
			require.NoError(t, err)
			assert.Equal(t, int8(math.MinInt8), i8)

			u64, err := UnmarshalRepr[uint64](c, []byte("18446744073709551615"))
			require.NoError(t, err)
			assert.Equal(t, uint64(math.MaxUint64), u64)

			i64, err := UnmarshalRepr[int64](c, []byte("-9223372036854775808"))
			require.NoError(t, err)
			assert.Equal(t, int64(math.MinInt64), i64)
		})
	}
}

func TestUnmarshalReprErrors(t *testing.T) {
	t.Run("range", func(t *testing.T) {
		_, err := UnmarshalRepr[int8](nil, []byte("-129"))
		var re *RangeError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "-129", re.Number)
		assert.Equal(t, "int8", re.Repr)
		assert.ErrorIs(t, err, ErrRange)

		_, err = UnmarshalRepr[uint16](nil, []byte("65536"))
		assert.ErrorIs(t, err, ErrRange)

		_, err = UnmarshalRepr[uint8](nil, []byte("-1"))
		assert.ErrorIs(t, err, ErrRange)

		_, err = UnmarshalRepr[int64](nil, []byte("9223372036854775808"))
		assert.ErrorIs(t, err, ErrRange)
	})

	t.Run("not an integer", func(t *testing.T) {
		for _, input := range []string{"1.5", "-1.5", "1e3", `"7"`, "null"} {
			_, err := UnmarshalRepr[int32](nil, []byte(input))
			assert.ErrorIs(t, err, ErrNotInteger, input)

			_, err = UnmarshalRepr[uint32](nil, []byte(input))
			assert.ErrorIs(t, err, ErrNotInteger, input)
		}
	})
}
