// Package gen renders Go source for bounded integer types.
//
// A Definition names a type, its representation and the closed range
// [Min, Max] it covers. Render turns a Definition into a file declaring the
// type, one constant per value in ascending order, the boundint.Kind that
// backs it and the full method set of boundint.Integer delegating to that
// Kind. Malformed definitions, including ranges with Max below Min, are
// rejected before anything is written.
//
// # Usage
//
//	g := gen.New(gen.WithNaming(gen.NamingLegacy))
//	src, err := g.Render("smallint", gen.Definition{Type: "Bit", Repr: "uint8", Min: "0", Max: "1"})
//
// Several definitions can be loaded from a YAML config and written at once:
//
//	cfg, err := gen.LoadConfig("boundgen.yaml")
//	paths, err := g.Generate(ctx, cfg, "./smallint")
package gen
