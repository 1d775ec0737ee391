package boundint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantName(t *testing.T) {
	assert.Equal(t, "N3", VariantName[int8](-3))
	assert.Equal(t, "Z0", VariantName[int8](0))
	assert.Equal(t, "P3", VariantName[int8](3))
	assert.Equal(t, "Z0", VariantName[uint16](0))
	assert.Equal(t, "P15", VariantName[uint8](15))
	assert.Equal(t, "N128", VariantName[int8](math.MinInt8))
	assert.Equal(t, "N9223372036854775808", VariantName[int64](math.MinInt64))
	assert.Equal(t, "P18446744073709551615", VariantName[uint64](math.MaxUint64))
}

func TestLegacyVariantName(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"signed negative", LegacyVariantName[int8](-8), "N8"},
		{"signed zero", LegacyVariantName[int8](0), "U0"},
		{"signed positive", LegacyVariantName[int8](7), "P7"},
		{"unsigned zero", LegacyVariantName[uint8](0), "U0"},
		{"unsigned positive", LegacyVariantName[uint8](15), "U15"},
		{"int32 min", LegacyVariantName[int32](math.MinInt32), "N2147483648"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
