package gen

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/boundint"
	"github.com/hupe1980/boundint/codec"
	"github.com/hupe1980/boundint/internal/conv"
)

// ErrInvalidDefinition is wrapped by every error Validate reports.
var ErrInvalidDefinition = errors.New("invalid definition")

// Naming selects how variants are named.
type Naming string

const (
	// NamingSign names -3, 0 and 3 as N3, Z0 and P3.
	NamingSign Naming = "sign"

	// NamingLegacy names zero and unsigned values U<n> (U0, U15) and keeps
	// N and P for signed values.
	NamingLegacy Naming = "legacy"
)

func (n Naming) valid() bool {
	return n == NamingSign || n == NamingLegacy
}

// Literal is an integer literal kept as text until the representation is
// known, so 64-bit extremes survive YAML decoding.
type Literal string

// UnmarshalYAML accepts any scalar.
func (l *Literal) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: integer literal must be a scalar", n.Line)
	}
	*l = Literal(n.Value)
	return nil
}

// Definition declares one bounded type covering [Min, Max]. Codec names
// the JSON codec bound to the type (see codec.ByName); empty keeps the
// default.
type Definition struct {
	Type   string  `yaml:"type"`
	Repr   string  `yaml:"repr"`
	Min    Literal `yaml:"min"`
	Max    Literal `yaml:"max"`
	Naming Naming  `yaml:"naming,omitempty"`
	Codec  string  `yaml:"codec,omitempty"`
	Doc    string  `yaml:"doc,omitempty"`
	Output string  `yaml:"output,omitempty"`
}

// FileName returns Output, or the lowercased type name with a _gen.go
// suffix. Validate only accepts an Output that is a plain .go file name,
// so the file always lands in the output directory.
func (d Definition) FileName() string {
	if d.Output != "" {
		return d.Output
	}
	return strings.ToLower(d.Type) + "_gen.go"
}

type width struct {
	signed bool
	bits   int
}

var widths = map[string]width{
	"int8":   {true, 8},
	"int16":  {true, 16},
	"int32":  {true, 32},
	"int64":  {true, 64},
	"uint8":  {false, 8},
	"uint16": {false, 16},
	"uint32": {false, 32},
	"uint64": {false, 64},
}

type variant struct {
	Const string
	Name  string
	Repr  string
	Ord   int
}

// resolved is a validated Definition with its variant table expanded.
type resolved struct {
	def      Definition
	naming   Naming
	kindVar  string
	ordType  string
	variants []variant
}

func invalid(def Definition, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidDefinition, def.Type, fmt.Sprintf(format, args...))
}

// Validate checks d without rendering it.
func (g *Generator) Validate(d Definition) error {
	_, err := g.resolve(d, "")
	return err
}

func (g *Generator) resolve(d Definition, fallback Naming) (*resolved, error) {
	if !token.IsIdentifier(d.Type) {
		return nil, invalid(d, "type name is not a Go identifier")
	}
	w, ok := widths[d.Repr]
	if !ok {
		return nil, invalid(d, "unsupported representation %q", d.Repr)
	}
	if d.Codec != "" {
		if _, ok := codec.ByName(d.Codec); !ok {
			return nil, invalid(d, "unknown codec %q", d.Codec)
		}
	}
	if err := checkOutput(d); err != nil {
		return nil, err
	}

	naming := d.Naming
	if naming == "" {
		naming = fallback
	}
	if naming == "" {
		naming = g.opts.naming
	}
	if !naming.valid() {
		return nil, invalid(d, "unknown naming %q", naming)
	}

	var (
		values []variant
		err    error
	)
	if w.signed {
		values, err = g.signedVariants(d, w, naming)
	} else {
		values, err = g.unsignedVariants(d, w, naming)
	}
	if err != nil {
		return nil, err
	}

	for i := range values {
		values[i].Const = d.Type + values[i].Name
		values[i].Ord = i
	}
	return &resolved{
		def:      d,
		naming:   naming,
		kindVar:  lowerLead(d.Type) + "Kind",
		ordType:  ordinalType(len(values)),
		variants: values,
	}, nil
}

// checkOutput keeps generated files inside the output directory.
func checkOutput(d Definition) error {
	if d.Output == "" {
		return nil
	}
	if filepath.IsAbs(d.Output) || strings.ContainsAny(d.Output, `/\`) || d.Output != filepath.Base(d.Output) {
		return invalid(d, "output %q must be a plain file name", d.Output)
	}
	if !strings.HasSuffix(d.Output, ".go") || strings.HasPrefix(d.Output, ".") {
		return invalid(d, "output %q must be a .go file name", d.Output)
	}
	return nil
}

// ordinalType returns the smallest unsigned type holding n ordinals.
func ordinalType(n int) string {
	switch {
	case n <= 1<<8:
		return "uint8"
	case n <= 1<<16:
		return "uint16"
	default:
		return "uint32"
	}
}

func (g *Generator) signedVariants(d Definition, w width, naming Naming) ([]variant, error) {
	lo, err := conv.ParseSigned(string(d.Min), w.bits)
	if err != nil {
		return nil, invalid(d, "min: %v", err)
	}
	hi, err := conv.ParseSigned(string(d.Max), w.bits)
	if err != nil {
		return nil, invalid(d, "max: %v", err)
	}
	if hi < lo {
		return nil, invalid(d, "max %d is below min %d", hi, lo)
	}
	// uint64 arithmetic keeps [MinInt64, MaxInt64] from overflowing.
	count, err := g.count(d, uint64(hi)-uint64(lo))
	if err != nil {
		return nil, err
	}

	values := make([]variant, 0, count)
	for v := lo; ; v++ {
		values = append(values, variant{Name: variantName(v, naming), Repr: strconv.FormatInt(v, 10)})
		if v == hi {
			break
		}
	}
	return values, nil
}

func (g *Generator) unsignedVariants(d Definition, w width, naming Naming) ([]variant, error) {
	lo, err := conv.ParseUnsigned(string(d.Min), w.bits)
	if err != nil {
		return nil, invalid(d, "min: %v", err)
	}
	hi, err := conv.ParseUnsigned(string(d.Max), w.bits)
	if err != nil {
		return nil, invalid(d, "max: %v", err)
	}
	if hi < lo {
		return nil, invalid(d, "max %d is below min %d", hi, lo)
	}
	count, err := g.count(d, hi-lo)
	if err != nil {
		return nil, err
	}

	values := make([]variant, 0, count)
	for v := lo; ; v++ {
		values = append(values, variant{Name: variantName(v, naming), Repr: strconv.FormatUint(v, 10)})
		if v == hi {
			break
		}
	}
	return values, nil
}

// count turns the distance between the bounds into a number of values,
// enforcing the variant limit.
func (g *Generator) count(d Definition, span uint64) (int, error) {
	n, err := conv.Uint64ToInt(span)
	if err != nil || n >= g.opts.maxVariants {
		return 0, invalid(d, "range exceeds the limit of %d values", g.opts.maxVariants)
	}
	return n + 1, nil
}

func variantName[R int64 | uint64](v R, naming Naming) string {
	if naming == NamingLegacy {
		return boundint.LegacyVariantName(v)
	}
	return boundint.VariantName(v)
}
