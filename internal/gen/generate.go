package gen

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Generate renders every definition of cfg and writes one file per type
// into dir. All definitions are rendered before any file is written, so a
// malformed definition leaves dir untouched. It returns the written paths
// in the order of cfg.Types.
func (g *Generator) Generate(ctx context.Context, cfg *Config, dir string) ([]string, error) {
	sources, err := g.renderAll(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	paths := make([]string, len(cfg.Types))
	for i, d := range cfg.Types {
		path := filepath.Join(dir, d.FileName())
		err := os.WriteFile(path, sources[i], 0o644)
		g.opts.logger.LogWrite(ctx, path, len(sources[i]), err)
		if err != nil {
			return nil, err
		}
		paths[i] = path
	}
	return paths, nil
}

func (g *Generator) renderAll(ctx context.Context, cfg *Config) ([][]byte, error) {
	if err := checkFileNames(cfg); err != nil {
		return nil, err
	}

	sources := make([][]byte, len(cfg.Types))
	var failed atomic.Int64

	eg, ctx := errgroup.WithContext(ctx)
	if g.opts.parallelism > 0 {
		eg.SetLimit(g.opts.parallelism)
	}
	for i, d := range cfg.Types {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, n, err := g.render(cfg.Package, d, cfg.Naming)
			g.opts.logger.LogRender(ctx, d, n, err)
			if err != nil {
				failed.Add(1)
				return err
			}
			sources[i] = src
			return nil
		})
	}

	err := eg.Wait()
	g.opts.logger.LogGenerate(ctx, len(cfg.Types), int(failed.Load()))
	if err != nil {
		return nil, err
	}
	return sources, nil
}

func checkFileNames(cfg *Config) error {
	names := make([]string, 0, len(cfg.Types))
	for _, d := range cfg.Types {
		names = append(names, d.FileName())
	}
	sort.Strings(names)
	for i := 1; i < len(names); i++ {
		if names[i] == names[i-1] {
			return &fileClashError{name: names[i]}
		}
	}
	return nil
}

type fileClashError struct {
	name string
}

func (e *fileClashError) Error() string {
	return "two definitions write " + e.name
}

func (e *fileClashError) Unwrap() error { return ErrInvalidDefinition }
