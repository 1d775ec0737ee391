package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"
	"unicode"
)

// Generator renders bounded integer definitions.
type Generator struct {
	opts options
}

// New creates a Generator.
func New(optFns ...Option) *Generator {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Generator{opts: opts}
}

type fileData struct {
	Package    string
	ModulePath string
	Type       string
	Repr       string
	Kind       string
	OrdType    string
	Codec      string
	Doc        []string
	Variants   []variant
}

// Render returns the gofmt'ed source of a file declaring d in package pkg.
func (g *Generator) Render(pkg string, d Definition) ([]byte, error) {
	src, _, err := g.render(pkg, d, "")
	return src, err
}

// render also returns the number of variants declared.
func (g *Generator) render(pkg string, d Definition, fallback Naming) ([]byte, int, error) {
	if !token.IsIdentifier(pkg) {
		return nil, 0, fmt.Errorf("%w: package name %q is not a Go identifier", ErrInvalidDefinition, pkg)
	}
	r, err := g.resolve(d, fallback)
	if err != nil {
		return nil, 0, err
	}

	data := fileData{
		Package:    pkg,
		ModulePath: ModulePath,
		Type:       d.Type,
		Repr:       d.Repr,
		Kind:       r.kindVar,
		OrdType:    r.ordType,
		Codec:      d.Codec,
		Doc:        docLines(d),
		Variants:   r.variants,
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, 0, fmt.Errorf("render %s: %w", d.Type, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, 0, fmt.Errorf("format %s: %w", d.Type, err)
	}
	return src, len(r.variants), nil
}

func docLines(d Definition) []string {
	doc := strings.TrimSpace(d.Doc)
	if doc == "" {
		doc = fmt.Sprintf("%s is a bounded integer in [%s, %s] represented as %s.", d.Type, d.Min, d.Max, d.Repr)
	}
	return strings.Split(doc, "\n")
}

// lowerLead lowercases the leading capitals of an identifier, keeping the
// last one when it starts a word: Bit -> bit, UNibble -> uNibble,
// NZUNibble -> nzuNibble.
func lowerLead(s string) string {
	rs := []rune(s)
	n := 0
	for n < len(rs) && unicode.IsUpper(rs[n]) {
		n++
	}
	if n > 1 && n < len(rs) {
		n--
	}
	for i := 0; i < n; i++ {
		rs[i] = unicode.ToLower(rs[i])
	}
	return string(rs)
}

var templateFuncs = template.FuncMap{
	"ops":    func() []string { return []string{"Add", "Sub", "Mul", "Div", "Rem"} },
	"satOps": func() []string { return []string{"Add", "Sub", "Mul"} },
}

var fileTemplate = template.Must(template.New("file").Funcs(templateFuncs).Parse(`// Code generated by boundgen; DO NOT EDIT.

package {{.Package}}

import (
	"iter"

	"{{.ModulePath}}"
{{- if .Codec}}
	"{{.ModulePath}}/codec"
{{- end}}
)

{{range .Doc}}// {{.}}
{{end -}}
//
// The zero value is {{(index .Variants 0).Const}}.
type {{.Type}} struct {
	ord {{.OrdType}}
}

// {{.Type}} values in ascending order.
var (
{{- range .Variants}}
	{{.Const}} = {{$.Type}}{ord: {{.Ord}}}
{{- end}}
)

var {{.Kind}} = boundint.MustKind[{{.Type}}, {{.Repr}}]("{{.Type}}",
	func(i int) {{.Type}} { return {{.Type}}{ord: {{.OrdType}}(i)} },
	func(v {{.Type}}) int { return int(v.ord) },
{{- range .Variants}}
	boundint.Variant[{{$.Repr}}]{Name: "{{.Name}}", Repr: {{.Repr}}},
{{- end}}
){{if .Codec}}.WithCodec(codec.MustByName("{{.Codec}}")){{end}}

// {{.Type}}Kind returns the descriptor of {{.Type}}.
func {{.Type}}Kind() *boundint.Kind[{{.Type}}, {{.Repr}}] { return {{.Kind}} }

// {{.Type}}FromRepr returns the {{.Type}} whose representation is r.
func {{.Type}}FromRepr(r {{.Repr}}) ({{.Type}}, bool) { return {{.Kind}}.FromRepr(r) }

// {{.Type}}Min returns the smallest {{.Type}}.
func {{.Type}}Min() {{.Type}} { return {{.Kind}}.Min() }

// {{.Type}}Max returns the largest {{.Type}}.
func {{.Type}}Max() {{.Type}} { return {{.Kind}}.Max() }

// {{.Type}}Values iterates every {{.Type}} in ascending order.
func {{.Type}}Values() iter.Seq[{{.Type}}] { return {{.Kind}}.All() }

func (v {{.Type}}) Repr() {{.Repr}} { return {{.Kind}}.ToRepr(v) }
func (v {{.Type}}) String() string { return {{.Kind}}.VariantName(v) }
func (v {{.Type}}) Compare(o {{.Type}}) int { return {{.Kind}}.Compare(v, o) }
func (v {{.Type}}) Less(o {{.Type}}) bool { return {{.Kind}}.Less(v, o) }
{{range $op := ops}}
func (v {{$.Type}}) Checked{{$op}}(o {{$.Type}}) ({{$.Type}}, bool) { return {{$.Kind}}.Checked{{$op}}(v, o) }
func (v {{$.Type}}) Checked{{$op}}Repr(r {{$.Repr}}) ({{$.Type}}, bool) { return {{$.Kind}}.Checked{{$op}}Repr(v, r) }
{{- end}}
func (v {{.Type}}) CheckedNeg() ({{.Type}}, bool) { return {{.Kind}}.CheckedNeg(v) }
{{range $op := satOps}}
func (v {{$.Type}}) Saturating{{$op}}(o {{$.Type}}) {{$.Type}} { return {{$.Kind}}.Saturating{{$op}}(v, o) }
func (v {{$.Type}}) Saturating{{$op}}Repr(r {{$.Repr}}) {{$.Type}} { return {{$.Kind}}.Saturating{{$op}}Repr(v, r) }
{{- end}}
{{range $op := ops}}
func (v {{$.Type}}) {{$op}}(o {{$.Type}}) {{$.Type}} { return {{$.Kind}}.{{$op}}(v, o) }
func (v {{$.Type}}) {{$op}}Repr(r {{$.Repr}}) {{$.Type}} { return {{$.Kind}}.{{$op}}Repr(v, r) }
{{- end}}
func (v {{.Type}}) Neg() {{.Type}} { return {{.Kind}}.Neg(v) }

func (v {{.Type}}) MarshalJSON() ([]byte, error) { return {{.Kind}}.MarshalJSON(v) }
func (v *{{.Type}}) UnmarshalJSON(data []byte) error { return {{.Kind}}.UnmarshalJSON(data, v) }
func (v {{.Type}}) MarshalText() ([]byte, error) { return {{.Kind}}.MarshalText(v) }
func (v *{{.Type}}) UnmarshalText(text []byte) error { return {{.Kind}}.UnmarshalText(text, v) }
`))
