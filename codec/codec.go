// Package codec encodes bounded values as JSON numbers.
//
// A bounded value travels as its representation. Decoding goes through
// Number, which keeps the literal as text, so 64-bit extremes are checked
// exactly against the target width instead of passing through float64.
package codec

import (
	"encoding/json"
	"fmt"
)

// Codec encodes and decodes representation numbers.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Name returns the stable name accepted by ByName.
	Name() string

	// Marshal encodes v.
	Marshal(v any) ([]byte, error)

	// Number decodes a single JSON value that must be a number.
	Number(data []byte) (json.Number, error)
}

// Default is the codec used by a Kind unless WithCodec selects another.
var Default Codec = GoJSON{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustByName is like ByName but panics on an unknown name. Generated code
// uses it to bind a codec chosen at generation time.
func MustByName(name string) Codec {
	c, ok := ByName(name)
	if !ok {
		panic(fmt.Sprintf("codec: unknown codec %q", name))
	}
	return c
}
