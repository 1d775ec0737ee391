package boundint

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is wrapped by every OverflowError.
	ErrOverflow = errors.New("bounded integer overflow")

	// ErrOutOfRange is wrapped by every RangeError.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidDefinition is wrapped by every DefinitionError.
	ErrInvalidDefinition = errors.New("invalid bounded integer definition")
)

// OverflowError is the panic value of the operator methods (Add, Sub, Mul,
// Div, Rem, Neg and their Repr variants) when the result leaves the bounds
// of the type or does not fit its representation.
//
// Right is nil for unary operations.
type OverflowError struct {
	Type  string
	Op    string
	Left  any
	Right any
}

func (e *OverflowError) Error() string {
	if e.Right == nil {
		return fmt.Sprintf("%s: attempt to %s with overflow: %v", e.Type, e.Op, e.Left)
	}
	return fmt.Sprintf("%s: attempt to %s with overflow: %v, %v", e.Type, e.Op, e.Left, e.Right)
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }

// RangeError reports a representation outside the bounds of a type. It is
// also the panic value of ToRepr and the arithmetic methods when given a
// value that is not a variant of its type.
type RangeError struct {
	Type  string
	Value any
	Min   any
	Max   any
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %v out of range [%v, %v]", e.Type, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// DefinitionError reports a malformed bounded-integer declaration, such as
// an empty or non-contiguous variant table or a range with max < min.
type DefinitionError struct {
	Type   string
	Reason string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Reason)
}

func (e *DefinitionError) Unwrap() error { return ErrInvalidDefinition }
