package boundint

import (
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/boundint/repr"
)

// Set is a set of values of one bounded type, stored as a roaring bitmap of
// ordinals. The zero value is not usable; create sets with NewSet.
//
// A Set is not safe for concurrent mutation.
type Set[T any, R repr.Integer] struct {
	kind *Kind[T, R]
	bm   *roaring.Bitmap
}

// NewSet returns a set holding values. Values that are not variants of k
// are skipped.
func NewSet[T any, R repr.Integer](k *Kind[T, R], values ...T) *Set[T, R] {
	s := &Set[T, R]{kind: k, bm: roaring.New()}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// FullSet returns a set holding every value of k.
func FullSet[T any, R repr.Integer](k *Kind[T, R]) *Set[T, R] {
	s := &Set[T, R]{kind: k, bm: roaring.New()}
	s.bm.AddRange(0, uint64(k.Len()))
	return s
}

// Kind returns the type descriptor of the set's values.
func (s *Set[T, R]) Kind() *Kind[T, R] { return s.kind }

// Add inserts v and reports whether it was newly added. Values that are not
// variants of the type are rejected.
func (s *Set[T, R]) Add(v T) bool {
	i, ok := s.index(v)
	if !ok {
		return false
	}
	return s.bm.CheckedAdd(i)
}

// Remove deletes v and reports whether it was present.
func (s *Set[T, R]) Remove(v T) bool {
	i, ok := s.index(v)
	if !ok {
		return false
	}
	return s.bm.CheckedRemove(i)
}

// Contains reports whether v is in the set.
func (s *Set[T, R]) Contains(v T) bool {
	i, ok := s.index(v)
	return ok && s.bm.Contains(i)
}

// Len returns the number of values in the set.
func (s *Set[T, R]) Len() int { return int(s.bm.GetCardinality()) }

// IsEmpty reports whether the set holds no values.
func (s *Set[T, R]) IsEmpty() bool { return s.bm.IsEmpty() }

// Min returns the smallest value in the set.
func (s *Set[T, R]) Min() (T, bool) {
	if s.bm.IsEmpty() {
		var zero T
		return zero, false
	}
	return s.kind.At(int(s.bm.Minimum()))
}

// Max returns the largest value in the set.
func (s *Set[T, R]) Max() (T, bool) {
	if s.bm.IsEmpty() {
		var zero T
		return zero, false
	}
	return s.kind.At(int(s.bm.Maximum()))
}

// All iterates the set in ascending order.
func (s *Set[T, R]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.bm.Iterator()
		for it.HasNext() {
			v, _ := s.kind.At(int(it.Next()))
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns the members of the set in ascending order.
func (s *Set[T, R]) Values() []T {
	out := make([]T, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// Clone returns an independent copy of the set.
func (s *Set[T, R]) Clone() *Set[T, R] {
	return &Set[T, R]{kind: s.kind, bm: s.bm.Clone()}
}

// Union returns the values in s or o.
func (s *Set[T, R]) Union(o *Set[T, R]) *Set[T, R] {
	return &Set[T, R]{kind: s.kind, bm: roaring.Or(s.bm, o.bm)}
}

// Intersect returns the values in both s and o.
func (s *Set[T, R]) Intersect(o *Set[T, R]) *Set[T, R] {
	return &Set[T, R]{kind: s.kind, bm: roaring.And(s.bm, o.bm)}
}

// Difference returns the values in s but not in o.
func (s *Set[T, R]) Difference(o *Set[T, R]) *Set[T, R] {
	return &Set[T, R]{kind: s.kind, bm: roaring.AndNot(s.bm, o.bm)}
}

// Complement returns every value of the type that is not in s.
func (s *Set[T, R]) Complement() *Set[T, R] {
	return &Set[T, R]{kind: s.kind, bm: roaring.Flip(s.bm, 0, uint64(s.kind.Len()))}
}

// Equal reports whether s and o hold the same values.
func (s *Set[T, R]) Equal(o *Set[T, R]) bool { return s.bm.Equals(o.bm) }

func (s *Set[T, R]) index(v T) (uint32, bool) {
	i, ok := s.kind.Ordinal(v)
	if !ok || uint64(i) > math.MaxUint32 {
		return 0, false
	}
	return uint32(i), true
}
