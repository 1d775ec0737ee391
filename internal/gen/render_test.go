package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	g := New()

	src, err := g.Render("smallint", Definition{
		Type:   "Bit",
		Repr:   "uint8",
		Min:    "0",
		Max:    "1",
		Naming: NamingLegacy,
		Doc:    "Bit is a single binary digit.",
	})
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by boundgen; DO NOT EDIT.\n"))
	assert.Contains(t, out, "package smallint\n")
	assert.Contains(t, out, `"github.com/hupe1980/boundint"`)
	assert.Contains(t, out, "// Bit is a single binary digit.\n//\n// The zero value is BitU0.\ntype Bit struct {\n\tord uint8\n}\n")
	assert.Contains(t, out, "\tBitU0 = Bit{ord: 0}\n\tBitU1 = Bit{ord: 1}\n")
	assert.Contains(t, out, `boundint.Variant[uint8]{Name: "U1", Repr: 1},`)
	assert.Contains(t, out, "var bitKind = boundint.MustKind[Bit, uint8](\"Bit\",")
	assert.Contains(t, out, "func(i int) Bit { return Bit{ord: uint8(i)} },")
	assert.Contains(t, out, "func(v Bit) int { return int(v.ord) },")
	assert.NotContains(t, out, "/codec\"")
	assert.NotContains(t, out, "WithCodec")
	assert.Contains(t, out, "func (v *Bit) UnmarshalText(text []byte) error")
	assert.Contains(t, out, "func (v Bit) SaturatingMulRepr(r uint8) Bit")

	file := parse(t, src)
	assert.Equal(t, "smallint", file.Name.Name)
	methods := methodNames(file, "Bit")
	for _, name := range []string{
		"Repr", "String", "Compare", "Less",
		"CheckedAdd", "CheckedAddRepr", "CheckedRem", "CheckedRemRepr", "CheckedNeg",
		"SaturatingAdd", "SaturatingSubRepr",
		"Add", "DivRepr", "Neg",
		"MarshalJSON", "UnmarshalJSON", "MarshalText", "UnmarshalText",
	} {
		assert.Contains(t, methods, name)
	}
	assert.Len(t, methods, 36)
}

func TestRenderSigned(t *testing.T) {
	g := New()

	src, err := g.Render("smallint", Definition{Type: "Nibble", Repr: "int8", Min: "-8", Max: "7"})
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "\tNibbleN8 = Nibble{ord: 0}\n")
	assert.Contains(t, out, "\tNibbleZ0 = Nibble{ord: 8}\n")
	assert.Contains(t, out, "\tNibbleP7 = Nibble{ord: 15}\n")
	assert.Contains(t, out, `boundint.Variant[int8]{Name: "N8", Repr: -8},`)
	assert.Contains(t, out, "// The zero value is NibbleN8.\n")
	assert.Contains(t, out, "// Nibble is a bounded integer in [-8, 7] represented as int8.\n")
	parse(t, src)
}

func TestRenderOffsets(t *testing.T) {
	g := New(WithNaming(NamingLegacy))

	src, err := g.Render("p", Definition{Type: "NZUNibble", Repr: "uint8", Min: "1", Max: "15"})
	require.NoError(t, err)
	out := string(src)
	assert.Contains(t, out, "\tNZUNibbleU1  = NZUNibble{ord: 0}\n")
	assert.Contains(t, out, "\tNZUNibbleU15 = NZUNibble{ord: 14}\n")
	assert.Contains(t, out, `boundint.Variant[uint8]{Name: "U1", Repr: 1},`)
	assert.Contains(t, out, "var nzuNibbleKind = ")
	assert.NotContains(t, out, "NZUNibbleU0")
	parse(t, src)
}

func TestRenderExtremes(t *testing.T) {
	g := New()

	src, err := g.Render("p", Definition{
		Type: "Top",
		Repr: "int64",
		Min:  "9223372036854775806",
		Max:  "9223372036854775807",
	})
	require.NoError(t, err)
	assert.Contains(t, string(src), "\tTopP9223372036854775806 = Top{ord: 0}\n")
	assert.Contains(t, string(src), `boundint.Variant[int64]{Name: "P9223372036854775807", Repr: 9223372036854775807},`)

	src, err = g.Render("p", Definition{
		Type: "Bottom",
		Repr: "int64",
		Min:  "-9223372036854775808",
		Max:  "-9223372036854775807",
	})
	require.NoError(t, err)
	assert.Contains(t, string(src), `boundint.Variant[int64]{Name: "N9223372036854775808", Repr: -9223372036854775808},`)

	src, err = g.Render("p", Definition{Type: "Hex", Repr: "uint16", Min: "0xfffe", Max: "0xffff"})
	require.NoError(t, err)
	assert.Contains(t, string(src), `boundint.Variant[uint16]{Name: "P65534", Repr: 65534},`)
}

func TestRenderCodec(t *testing.T) {
	g := New()

	src, err := g.Render("p", Definition{Type: "Trit", Repr: "int8", Min: "-1", Max: "1", Codec: "json"})
	require.NoError(t, err)
	out := string(src)
	assert.Contains(t, out, "\t\"github.com/hupe1980/boundint/codec\"\n")
	assert.Contains(t, out, ").WithCodec(codec.MustByName(\"json\"))\n")
	parse(t, src)

	_, err = g.Render("p", Definition{Type: "Trit", Repr: "int8", Min: "-1", Max: "1", Codec: "xml"})
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestRenderOrdinalWidth(t *testing.T) {
	src, err := New(WithMaxVariants(-1)).Render("p", Definition{Type: "Wide", Repr: "int16", Min: "-200", Max: "200"})
	require.NoError(t, err)
	out := string(src)
	assert.Contains(t, out, "type Wide struct {\n\tord uint16\n}\n")
	assert.Contains(t, out, "return Wide{ord: uint16(i)}")
	assert.Contains(t, out, "Wide{ord: 400}\n")
}

func TestOrdinalType(t *testing.T) {
	assert.Equal(t, "uint8", ordinalType(1))
	assert.Equal(t, "uint8", ordinalType(256))
	assert.Equal(t, "uint16", ordinalType(257))
	assert.Equal(t, "uint16", ordinalType(1<<16))
	assert.Equal(t, "uint32", ordinalType(1<<16+1))
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		pkg  string
		def  Definition
	}{
		{"bad package", "not a package", Definition{Type: "Bit", Repr: "uint8", Min: "0", Max: "1"}},
		{"bad type", "p", Definition{Type: "1Bit", Repr: "uint8", Min: "0", Max: "1"}},
		{"bad repr", "p", Definition{Type: "Bit", Repr: "int", Min: "0", Max: "1"}},
		{"max below min", "p", Definition{Type: "Bit", Repr: "uint8", Min: "1", Max: "0"}},
		{"min overflows", "p", Definition{Type: "Bit", Repr: "int8", Min: "-129", Max: "0"}},
		{"max overflows", "p", Definition{Type: "Bit", Repr: "uint8", Min: "0", Max: "256"}},
		{"negative unsigned", "p", Definition{Type: "Bit", Repr: "uint8", Min: "-1", Max: "1"}},
		{"not a number", "p", Definition{Type: "Bit", Repr: "uint8", Min: "zero", Max: "1"}},
		{"unknown naming", "p", Definition{Type: "Bit", Repr: "uint8", Min: "0", Max: "1", Naming: "roman"}},
		{"too many values", "p", Definition{Type: "Wide", Repr: "int16", Min: "-32768", Max: "32767"}},
		{"full uint64", "p", Definition{Type: "Wide", Repr: "uint64", Min: "0", Max: "18446744073709551615"}},
		{"unknown codec", "p", Definition{Type: "Bit", Repr: "uint8", Min: "0", Max: "1", Codec: "xml"}},
		{"output escapes upward", "p", Definition{Type: "Bit", Repr: "uint8", Min: "0", Max: "1", Output: "../../x.go"}},
		{"absolute output", "p", Definition{Type: "Bit", Repr: "uint8", Min: "0", Max: "1", Output: "/tmp/x.go"}},
		{"output in subdirectory", "p", Definition{Type: "Bit", Repr: "uint8", Min: "0", Max: "1", Output: "a/b.go"}},
		{"output with backslash", "p", Definition{Type: "Bit", Repr: "uint8", Min: "0", Max: "1", Output: `a\b.go`}},
		{"output not go", "p", Definition{Type: "Bit", Repr: "uint8", Min: "0", Max: "1", Output: "x.txt"}},
		{"hidden output", "p", Definition{Type: "Bit", Repr: "uint8", Min: "0", Max: "1", Output: ".x.go"}},
	}
	g := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Render(tt.pkg, tt.def)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDefinition)
		})
	}
}

func TestMaxVariants(t *testing.T) {
	d := Definition{Type: "Byte", Repr: "uint8", Min: "0", Max: "255"}

	assert.NoError(t, New().Validate(d))
	assert.ErrorIs(t, New(WithMaxVariants(255)).Validate(d), ErrInvalidDefinition)
	assert.NoError(t, New(WithMaxVariants(256)).Validate(d))
	assert.NoError(t, New(WithMaxVariants(-1)).Validate(d))
}

func TestLowerLead(t *testing.T) {
	tests := map[string]string{
		"Bit":       "bit",
		"UNibble":   "uNibble",
		"NZUNibble": "nzuNibble",
		"SNibble":   "sNibble",
		"ID":        "id",
		"X":         "x",
		"lower":     "lower",
	}
	for in, want := range tests {
		assert.Equal(t, want, lowerLead(in), in)
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "nzunibble_gen.go", Definition{Type: "NZUNibble"}.FileName())
	assert.Equal(t, "custom.go", Definition{Type: "Bit", Output: "custom.go"}.FileName())
}

func parse(t *testing.T, src []byte) *ast.File {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	return file
}

func methodNames(file *ast.File, typ string) []string {
	var names []string
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil {
			continue
		}
		recv := fn.Recv.List[0].Type
		if star, ok := recv.(*ast.StarExpr); ok {
			recv = star.X
		}
		if id, ok := recv.(*ast.Ident); ok && id.Name == typ {
			names = append(names, fn.Name.Name)
		}
	}
	return names
}
