package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/squarespiral/pkg/core/spiral"
	"github.com/matzehuels/squarespiral/pkg/dataset"
	"github.com/matzehuels/squarespiral/pkg/layout"
	"github.com/matzehuels/squarespiral/pkg/observability"
)

// Pack packs a dataset into a layout without caching. When sorted is set
// the dataset is ordered largest-first before packing; the returned layout
// keeps that order.
func Pack(ctx context.Context, ds *dataset.Dataset, maxValue float64, sorted bool, logger *log.Logger) (layout.Layout, error) {
	if sorted {
		ds = ds.SortDescending()
	}

	hooks := observability.Pipeline()
	hooks.OnPackStart(ctx, ds.Len())
	start := time.Now()

	var opts []spiral.Option
	if logger != nil && logger.GetLevel() <= log.DebugLevel {
		opts = append(opts, spiral.WithStep(func(s spiral.Step) {
			logger.Debug("placed square",
				"index", s.Index,
				"anchor", s.Anchor,
				"inside", s.Inside,
				"side", s.Square.Width,
				"outline", s.Outline)
		}))
	}

	res, err := spiral.Pack(ds.Values(), maxValue, opts...)
	hooks.OnPackComplete(ctx, ds.Len(), time.Since(start), err)
	if err != nil {
		return layout.Layout{}, err
	}
	return layout.FromResult(ds, maxValue, sorted, res)
}
