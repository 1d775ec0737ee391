// Command boundgen generates bounded integer types.
//
// A single type is declared with flags, typically from a go:generate line:
//
//	//go:generate go run github.com/hupe1980/boundint/cmd/boundgen -type Nibble -repr int8 -min -8 -max 7
//
// Several types are declared in a YAML config:
//
//	boundgen -config boundgen.yaml -o ./smallint
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/hupe1980/boundint/internal/gen"
)

var (
	configPath  = flag.String("config", "", "YAML config declaring several types")
	output      = flag.String("o", ".", "output directory")
	pkg         = flag.String("pkg", os.Getenv("GOPACKAGE"), "package name (default: $GOPACKAGE)")
	typeName    = flag.String("type", "", "type name")
	reprName    = flag.String("repr", "", "representation (int8 ... int64, uint8 ... uint64)")
	minLit      = flag.String("min", "", "smallest value")
	maxLit      = flag.String("max", "", "largest value")
	naming      = flag.String("naming", string(gen.NamingSign), "variant naming (sign, legacy)")
	doc         = flag.String("doc", "", "doc comment of the type")
	codecName   = flag.String("codec", "", "JSON codec bound to the type (json, go-json; default: go-json)")
	maxVariants = flag.Int("max-variants", gen.DefaultMaxVariants, "largest number of values per type")
	parallelism = flag.Int("j", 0, "definitions rendered at once (default: GOMAXPROCS)")
	verbose     = flag.Bool("v", false, "verbose output")
	jsonLogs    = flag.Bool("json", false, "log as JSON")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "boundgen: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := gen.NewTextLogger(level)
	if *jsonLogs {
		logger = gen.NewJSONLogger(level)
	}

	g := gen.New(
		gen.WithLogger(logger),
		gen.WithNaming(gen.Naming(*naming)),
		gen.WithMaxVariants(*maxVariants),
		gen.WithParallelism(*parallelism),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := g.Generate(ctx, cfg, *output); err != nil {
		fmt.Fprintf(os.Stderr, "boundgen: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func loadConfig() (*gen.Config, error) {
	if *configPath != "" {
		if *typeName != "" {
			return nil, fmt.Errorf("-config and -type are mutually exclusive")
		}
		cfg, err := gen.LoadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		if *pkg != "" && cfg.Package == "" {
			cfg.Package = *pkg
		}
		return cfg, nil
	}

	if *typeName == "" || *reprName == "" || *minLit == "" || *maxLit == "" {
		return nil, fmt.Errorf("-type, -repr, -min and -max are required without -config")
	}
	if *pkg == "" {
		return nil, fmt.Errorf("-pkg is required outside go generate")
	}
	return &gen.Config{
		Package: *pkg,
		Types: []gen.Definition{{
			Type:  *typeName,
			Repr:  *reprName,
			Min:   gen.Literal(*minLit),
			Max:   gen.Literal(*maxLit),
			Doc:   *doc,
			Codec: *codecName,
		}},
	}, nil
}
