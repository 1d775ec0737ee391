package boundint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/boundint/codec"
)

func TestJSON(t *testing.T) {
	k, err := NewRangeKind[sbyte, int8]("SNib", -8, 7, sbyteOf, sbyteOrd)
	require.NoError(t, err)

	data, err := k.MarshalJSON(k.Min())
	require.NoError(t, err)
	assert.Equal(t, "-8", string(data))

	for _, v := range k.Values() {
		data, err := k.MarshalJSON(v)
		require.NoError(t, err)

		var got sbyte
		require.NoError(t, k.UnmarshalJSON(data, &got))
		assert.Equal(t, v, got)
	}
}

func TestMarshalJSONRejectsStrayValues(t *testing.T) {
	k := mustRange[uint8](t, "NZU", 1, 15)

	for _, stray := range []val{{ord: -1}, {ord: 15}, {ord: 200}} {
		data, err := k.MarshalJSON(stray)
		require.Error(t, err, "%v", stray)
		assert.Nil(t, data)
		assert.ErrorIs(t, err, ErrOutOfRange)

		var re *RangeError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "NZU", re.Type)
	}
}

func TestUnmarshalJSONNull(t *testing.T) {
	k := mustRange[uint8](t, "NZU", 1, 15)

	dst, ok := k.FromRepr(7)
	require.True(t, ok)
	require.NoError(t, k.UnmarshalJSON([]byte("null"), &dst))
	assert.Equal(t, uint8(7), k.ToRepr(dst))
}

func TestUnmarshalJSONErrors(t *testing.T) {
	k := mustRange[uint8](t, "NZU", 1, 15)

	tests := []struct {
		name  string
		input string
		is    error
	}{
		{"below min", "0", ErrOutOfRange},
		{"above max", "16", ErrOutOfRange},
		{"beyond repr", "300", ErrOutOfRange},
		{"negative", "-1", ErrOutOfRange},
		{"fraction", "1.5", codec.ErrNotInteger},
		{"exponent", "1e1", codec.ErrNotInteger},
		{"string", `"U1"`, codec.ErrNotInteger},
		{"garbage", `{`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst, _ := k.FromRepr(7)
			err := k.UnmarshalJSON([]byte(tt.input), &dst)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			assert.Equal(t, uint8(7), k.ToRepr(dst), "destination must be untouched")
		})
	}
}

func TestUnmarshalJSONSignedBeyondRepr(t *testing.T) {
	k := mustRange[int8](t, "Trit", -1, 1)

	var dst val
	err := k.UnmarshalJSON([]byte("-129"), &dst)
	assert.ErrorIs(t, err, ErrOutOfRange)

	var re *RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "-129", re.Value)
	assert.Equal(t, int8(-1), re.Min)
}

func TestWithCodec(t *testing.T) {
	base := mustRange[uint64](t, "Wide", 0, 3)
	k := base.WithCodec(codec.MustByName("json"))
	require.NotSame(t, base, k)

	for _, c := range []*Kind[val, uint64]{base, k, base.WithCodec(nil)} {
		data, err := c.MarshalJSON(c.Max())
		require.NoError(t, err)
		assert.Equal(t, "3", string(data))

		var got val
		require.NoError(t, c.UnmarshalJSON([]byte("2"), &got))
		assert.Equal(t, uint64(2), c.ToRepr(got))

		err = c.UnmarshalJSON([]byte("18446744073709551616"), &got)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
}

func TestText(t *testing.T) {
	k := mustRange[int8](t, "Trit", -1, 1)

	text, err := k.MarshalText(k.Min())
	require.NoError(t, err)
	assert.Equal(t, "N1", string(text))

	var got val
	require.NoError(t, k.UnmarshalText([]byte("P1"), &got))
	assert.Equal(t, k.Max(), got)

	_, err = k.MarshalText(val{ord: 5})
	assert.ErrorIs(t, err, ErrOutOfRange)

	err = k.UnmarshalText([]byte("P2"), &got)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, k.Max(), got)
}
