package boundint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	k, err := NewRangeKind[sbyte, int8]("SNib", -8, 7, sbyteOf, sbyteOrd)
	require.NoError(t, err)
	minus1, seven := of(t, k, -1), k.Max()

	s := NewSet(k)
	assert.True(t, s.IsEmpty())
	_, ok := s.Min()
	assert.False(t, ok)

	assert.True(t, s.Add(seven))
	assert.True(t, s.Add(minus1))
	assert.True(t, s.Add(k.Min()))
	assert.False(t, s.Add(seven), "already present")
	assert.False(t, s.Add(sbyte{bits: 100}), "not a variant")

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(minus1))
	assert.False(t, s.Contains(sbyte{}))
	assert.False(t, s.Contains(sbyte{bits: 100}))

	// Iteration follows value order, not storage order.
	assert.Equal(t, []sbyte{k.Min(), minus1, seven}, s.Values())

	lo, ok := s.Min()
	require.True(t, ok)
	assert.Equal(t, k.Min(), lo)
	hi, ok := s.Max()
	require.True(t, ok)
	assert.Equal(t, seven, hi)

	assert.True(t, s.Remove(seven))
	assert.False(t, s.Remove(seven))
	assert.Equal(t, 2, s.Len())
}

func TestSetAlgebra(t *testing.T) {
	k := mustRange[int8](t, "Nib", -8, 7)
	reprs := func(s *Set[val, int8]) []int8 {
		out := []int8{}
		for v := range s.All() {
			out = append(out, k.ToRepr(v))
		}
		return out
	}

	evens := NewSet(k)
	for v := range k.All() {
		if k.ToRepr(v)%2 == 0 {
			evens.Add(v)
		}
	}
	negatives := NewSet(k)
	for r := int8(-8); r < 0; r++ {
		negatives.Add(of(t, k, r))
	}

	assert.Equal(t, 8, evens.Len())
	assert.Equal(t, []int8{-8, -6, -4, -2}, reprs(evens.Intersect(negatives)))
	assert.Equal(t, []int8{0, 2, 4, 6}, reprs(evens.Difference(negatives)))
	assert.Equal(t, 12, evens.Union(negatives).Len())

	odds := evens.Complement()
	assert.Equal(t, []int8{-7, -5, -3, -1, 1, 3, 5, 7}, reprs(odds))
	assert.True(t, odds.Union(evens).Equal(FullSet(k)))
	assert.True(t, FullSet(k).Complement().IsEmpty())
}

func TestSetClone(t *testing.T) {
	k := mustRange[uint8](t, "Bit", 0, 1)

	s := NewSet(k, k.Min())
	c := s.Clone()
	c.Add(k.Max())

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, c.Len())
	assert.Same(t, k, c.Kind())
	assert.Equal(t, k.Len(), FullSet(k).Len())
}
