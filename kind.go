package boundint

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/hupe1980/boundint/codec"
	"github.com/hupe1980/boundint/repr"
)

// maxRangeLen caps NewRangeKind, which materializes every value.
const maxRangeLen = 1 << 24

// Variant is one entry of a bounded type's variant table: the name of a
// value and its representation.
type Variant[R repr.Integer] struct {
	Name string
	Repr R
}

// Kind describes a bounded integer type T with representation R.
//
// T is an opaque value type, usually a struct with a single unexported
// field, so values can only come from its Kind, its declared variables or
// its zero value. The Kind maps values to ordinals (0 for the minimum)
// through the two functions passed to NewKind; any encoding of the ordinal
// is allowed as long as the two functions invert each other.
//
// A Kind is built once per type, usually in a package-level variable, and
// is immutable afterwards. All methods are safe for concurrent use.
type Kind[T any, R repr.Integer] struct {
	name     string
	ordinal  func(T) int
	values   []T
	names    []string
	byName   map[string]int
	min, max R
	codec    codec.Codec
}

// NewKind builds a Kind from an ordered variant table. The representations
// must ascend by exactly one, starting at the type's minimum. fromOrdinal
// and ordinal convert between values and their positions in the table and
// must invert each other for every position.
func NewKind[T any, R repr.Integer](name string, fromOrdinal func(int) T, ordinal func(T) int, variants ...Variant[R]) (*Kind[T, R], error) {
	if len(variants) == 0 {
		return nil, &DefinitionError{Type: name, Reason: "no variants"}
	}
	if fromOrdinal == nil || ordinal == nil {
		return nil, &DefinitionError{Type: name, Reason: "missing ordinal functions"}
	}

	k := &Kind[T, R]{
		name:    name,
		ordinal: ordinal,
		values:  make([]T, len(variants)),
		names:   make([]string, len(variants)),
		byName:  make(map[string]int, len(variants)),
		min:     variants[0].Repr,
		max:     variants[len(variants)-1].Repr,
		codec:   codec.Default,
	}

	for i, v := range variants {
		if v.Name == "" {
			return nil, &DefinitionError{Type: name, Reason: fmt.Sprintf("variant %d has no name", i)}
		}
		if _, dup := k.byName[v.Name]; dup {
			return nil, &DefinitionError{Type: name, Reason: fmt.Sprintf("duplicate variant %s", v.Name)}
		}
		if i > 0 {
			prev := variants[i-1]
			next, ok := repr.CheckedAdd(prev.Repr, 1)
			if !ok || next != v.Repr {
				return nil, &DefinitionError{
					Type:   name,
					Reason: fmt.Sprintf("variant %s = %v does not follow %s = %v", v.Name, v.Repr, prev.Name, prev.Repr),
				}
			}
		}

		value := fromOrdinal(i)
		if got := ordinal(value); got != i {
			return nil, &DefinitionError{Type: name, Reason: fmt.Sprintf("variant %s: ordinal %d round-trips to %d", v.Name, i, got)}
		}
		k.values[i] = value
		k.names[i] = v.Name
		k.byName[v.Name] = i
	}

	return k, nil
}

// NewRangeKind builds a Kind covering every integer in [lo, hi], naming the
// variants with VariantName.
func NewRangeKind[T any, R repr.Integer](name string, lo, hi R, fromOrdinal func(int) T, ordinal func(T) int) (*Kind[T, R], error) {
	if hi < lo {
		return nil, &DefinitionError{Type: name, Reason: fmt.Sprintf("max %v is below min %v", hi, lo)}
	}
	if uint64(hi)-uint64(lo) >= maxRangeLen {
		return nil, &DefinitionError{Type: name, Reason: fmt.Sprintf("range [%v, %v] has more than %d values", lo, hi, maxRangeLen)}
	}

	variants := make([]Variant[R], 0, int(uint64(hi)-uint64(lo))+1)
	for r := lo; ; r++ {
		variants = append(variants, Variant[R]{Name: VariantName(r), Repr: r})
		if r == hi {
			break
		}
	}
	return NewKind(name, fromOrdinal, ordinal, variants...)
}

// MustKind is like NewKind but panics on a malformed table. It simplifies
// the initialization of package-level Kinds.
func MustKind[T any, R repr.Integer](name string, fromOrdinal func(int) T, ordinal func(T) int, variants ...Variant[R]) *Kind[T, R] {
	k, err := NewKind(name, fromOrdinal, ordinal, variants...)
	if err != nil {
		panic(err)
	}
	return k
}

// WithCodec returns a copy of k that encodes JSON with c. A nil c selects
// codec.Default.
func (k *Kind[T, R]) WithCodec(c codec.Codec) *Kind[T, R] {
	if c == nil {
		c = codec.Default
	}
	cp := *k
	cp.codec = c
	return &cp
}

// Name returns the type name used in errors.
func (k *Kind[T, R]) Name() string { return k.name }

// Len returns the number of values of the type.
func (k *Kind[T, R]) Len() int { return len(k.values) }

// Min returns the smallest value of the type.
func (k *Kind[T, R]) Min() T { return k.values[0] }

// Max returns the largest value of the type.
func (k *Kind[T, R]) Max() T { return k.values[len(k.values)-1] }

// MinRepr returns the representation of Min.
func (k *Kind[T, R]) MinRepr() R { return k.min }

// MaxRepr returns the representation of Max.
func (k *Kind[T, R]) MaxRepr() R { return k.max }

// Contains reports whether r lies in [MinRepr, MaxRepr].
func (k *Kind[T, R]) Contains(r R) bool {
	return r >= k.min && r <= k.max
}

// FromRepr returns the value whose representation is r. The bounds check
// uses the numeric order of R.
func (k *Kind[T, R]) FromRepr(r R) (T, bool) {
	if !k.Contains(r) {
		var zero T
		return zero, false
	}
	return k.values[uint64(r)-uint64(k.min)], true
}

// Parse is FromRepr reporting a RangeError instead of false.
func (k *Kind[T, R]) Parse(r R) (T, error) {
	v, ok := k.FromRepr(r)
	if !ok {
		return v, k.rangeError(r)
	}
	return v, nil
}

// ToRepr returns the representation of t. It panics with a *RangeError if
// t is not a variant, which only code owning T's fields can cause.
func (k *Kind[T, R]) ToRepr(t T) R {
	return k.mustRepr(t)
}

// Valid reports whether t is one of the variants of the type.
func (k *Kind[T, R]) Valid(t T) bool {
	_, ok := k.Ordinal(t)
	return ok
}

// Ordinal returns the position of t in ascending order.
func (k *Kind[T, R]) Ordinal(t T) (int, bool) {
	i := k.ordinal(t)
	if i < 0 || i >= len(k.values) {
		return i, false
	}
	return i, true
}

// At returns the value at ordinal i.
func (k *Kind[T, R]) At(i int) (T, bool) {
	if i < 0 || i >= len(k.values) {
		var zero T
		return zero, false
	}
	return k.values[i], true
}

// VariantName returns the declared name of t. Values that are not
// variants format as %!Type(repr).
func (k *Kind[T, R]) VariantName(t T) string {
	i, ok := k.Ordinal(t)
	if !ok {
		return fmt.Sprintf("%%!%s(%v)", k.name, k.reprAt(i))
	}
	return k.names[i]
}

// Lookup returns the variant with the given name.
func (k *Kind[T, R]) Lookup(name string) (T, bool) {
	i, ok := k.byName[name]
	if !ok {
		var zero T
		return zero, false
	}
	return k.values[i], true
}

// Compare returns -1, 0 or +1 ordering a and b by representation.
func (k *Kind[T, R]) Compare(a, b T) int {
	return cmp.Compare(k.ordinal(a), k.ordinal(b))
}

// Less reports whether a orders before b.
func (k *Kind[T, R]) Less(a, b T) bool {
	return k.ordinal(a) < k.ordinal(b)
}

// Values returns every value of the type in ascending order.
func (k *Kind[T, R]) Values() []T {
	return slices.Clone(k.values)
}

// All iterates every value of the type in ascending order.
func (k *Kind[T, R]) All() iter.Seq[T] {
	return slices.Values(k.values)
}

// reprAt maps an ordinal to its representation. The uint64 arithmetic
// wraps exactly like R, so it is also meaningful for stray ordinals.
func (k *Kind[T, R]) reprAt(i int) R {
	return R(uint64(k.min) + uint64(i))
}

// reprOf returns the representation of t, or false if t is not a variant.
func (k *Kind[T, R]) reprOf(t T) (R, bool) {
	i, ok := k.Ordinal(t)
	return k.reprAt(i), ok
}

func (k *Kind[T, R]) mustRepr(t T) R {
	r, ok := k.reprOf(t)
	if !ok {
		panic(k.rangeError(r))
	}
	return r
}

func (k *Kind[T, R]) rangeError(r R) *RangeError {
	return &RangeError{Type: k.name, Value: r, Min: k.min, Max: k.max}
}
