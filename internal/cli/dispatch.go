package cli

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DispatchFiles runs fn once per file, bounded to workers concurrent
// calls. Parallelism exists only at this file-level granularity per §5
// of the core specification — each file's own page loop and pipeline
// runs sequentially within fn. workers <= 1 runs files sequentially in
// order, which also keeps single-worker runs deterministic for tests.
func DispatchFiles(ctx context.Context, files []string, workers int, fn func(ctx context.Context, file string) error) error {
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, file := range files {
		file := file
		g.Go(func() error {
			return fn(gctx, file)
		})
	}
	return g.Wait()
}
