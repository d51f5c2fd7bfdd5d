package gating

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ApplyToParallel applies t to values in place, splitting the buffer into
// contiguous chunks processed concurrently. Elements are independent and no
// ordering is imposed between them; results are identical to
// Transform.ApplyTo. workers <= 0 selects GOMAXPROCS.
//
// This is the one sanctioned internal parallelism in the model: the bulk
// transform hot path has no shared mutable state across elements.
func ApplyToParallel(t Transform, values []float64, workers int) error {
	if t == nil {
		return fmt.Errorf("%w: nil transform", ErrInvalidArgument)
	}
	if err := checkBulk(values); err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(values) {
		workers = len(values)
	}
	if workers == 1 {
		return t.ApplyTo(values)
	}

	chunk := (len(values) + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < len(values); start += chunk {
		end := min(start+chunk, len(values))
		part := values[start:end]
		g.Go(func() error {
			return t.ApplyTo(part)
		})
	}
	return g.Wait()
}
