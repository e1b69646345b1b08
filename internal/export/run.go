package export

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Result reports where one sink wrote the snapshot.
type Result struct {
	Format   Format
	Location string
}

// Run exports snap through every sink concurrently. Results keep the order of
// sinks; the first failure cancels the remaining sinks.
func Run(ctx context.Context, sinks []Sink, snap Snapshot) ([]Result, error) {
	results := make([]Result, len(sinks))
	g, gctx := errgroup.WithContext(ctx)
	for i, sink := range sinks {
		i, sink := i, sink
		g.Go(func() error {
			location, err := sink.Export(gctx, snap)
			if err != nil {
				return fmt.Errorf("%s export: %w", sink.Format(), err)
			}
			results[i] = Result{Format: sink.Format(), Location: location}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
