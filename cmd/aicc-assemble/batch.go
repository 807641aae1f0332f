package main

import (
	"context"

	"golang.org/x/sync/errgroup"

	"aicc-assembler/internal/model"
	"aicc-assembler/internal/tables"
)

// result is the outcome of loading and assembling one table file.
type result struct {
	path     string
	manifest *model.Manifest
	err      error
}

// assembleAll loads and assembles every path with at most a.cfg.Workers
// files in flight. Results keep the order of paths. Per-file failures are
// stored in the result, not returned.
func (a *app) assembleAll(ctx context.Context, paths []string) ([]result, error) {
	results := make([]result, len(paths))
	asm := a.assembler()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.cfg.Workers, 1))

	for i, path := range paths {
		i, path := i, path

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			log := a.logger.With("file", path)

			f, err := tables.LoadFile(path)
			if err != nil {
				log.Error("load failed", "error", err)
				results[i] = result{path: path, err: err}

				return nil
			}

			m, err := asm.Assemble(f.Tables())
			if err != nil {
				log.Warn("assembly failed", "error", err)
			} else {
				log.Info("course assembled", "course", m.Identifier(), "units", len(m.AssignableUnits()))
			}

			results[i] = result{path: path, manifest: m, err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
