package kmeans

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/kmeans/dataset"
	"github.com/hupe1980/kmeans/internal/aggregate"
	"github.com/hupe1980/kmeans/space"
)

// Clusterer runs several K-means runs over one dataset, sharing each data
// pass between all runs that are still moving.
//
// P is the point type, C the center type and S the accumulated sum type of
// the Space. A Clusterer is safe for concurrent use.
type Clusterer[P, C, S any] struct {
	space space.Space[P, C, S]
	opts  options
}

// New creates a Clusterer for the given space.
func New[P, C, S any](sp space.Space[P, C, S], optFns ...Option) (*Clusterer[P, C, S], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	opts := applyOptions(optFns)
	if opts.maxIterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxIterations, opts.maxIterations)
	}
	return &Clusterer[P, C, S]{
		space: sp,
		opts:  opts,
	}, nil
}

// Cluster runs one run per entry of initial and returns the centers of the
// run with the lowest final cost. Exact ties go to the lower run index.
//
// Each iteration makes one pass over data for all active runs. A run stops
// when none of its centers moved; clusters that attract no points are dropped
// and keep the run going. Runs that lose every center are degenerate and
// never win. initial is not modified.
func (c *Clusterer[P, C, S]) Cluster(ctx context.Context, data dataset.Dataset[P], initial [][]C) (*Model[C], error) {
	start := time.Now()

	model, err := c.cluster(ctx, data, initial)

	iterations := 0
	if model != nil {
		iterations = model.iterations
		c.opts.logger.LogResult(ctx, model.run, model.K(), iterations, model.cost, nil)
	} else {
		c.opts.logger.LogResult(ctx, -1, 0, iterations, 0, err)
	}
	c.opts.metricsCollector.RecordCluster(iterations, time.Since(start), err)

	return model, err
}

func (c *Clusterer[P, C, S]) cluster(ctx context.Context, data dataset.Dataset[P], initial [][]C) (*Model[C], error) {
	if data == nil {
		return nil, ErrNilDataset
	}
	if len(initial) == 0 {
		return nil, ErrNoRuns
	}
	for r, centers := range initial {
		if len(centers) == 0 {
			return nil, &ErrEmptyRun{Run: r}
		}
	}

	runs, active := initialRuns(initial)

	iteration := 0
	for ; iteration < c.opts.maxIterations && !active.IsEmpty(); iteration++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("kmeans: iteration %d: %w", iteration, err)
		}

		ids := active.ToArray()
		snapshot := make([][]C, len(ids))
		for i, r := range ids {
			snapshot[i] = slices.Clone(runs[r].centers)
		}

		passStart := time.Now()
		res, err := aggregate.Aggregate(ctx, c.opts.runner, data, c.space, snapshot)
		if err != nil {
			return nil, fmt.Errorf("kmeans: iteration %d: %w", iteration, err)
		}
		c.opts.metricsCollector.RecordIteration(len(ids), time.Since(passStart))

		var events []runEvent
		runs, active, events = step(c.space, runs, ids, res, iteration)

		c.report(ctx, iteration, ids, runs, res.Distortion, events)
	}

	best, ok := selectBest(runs)
	if !ok {
		return nil, ErrAllRunsDegenerate
	}

	return &Model[C]{
		centers:    runs[best].centers,
		cost:       runs[best].cost,
		run:        best,
		iterations: iteration,
		runs:       summarize(runs),
	}, nil
}

func (c *Clusterer[P, C, S]) report(ctx context.Context, iteration int, ids []uint32, runs []runState[C], distortion []float64, events []runEvent) {
	logger := c.opts.logger
	mc := c.opts.metricsCollector

	runIDs := make([]int, len(ids))
	centers := make([]int, len(ids))
	for i, r := range ids {
		runIDs[i] = int(r)
		centers[i] = len(runs[r].centers)
	}
	logger.LogIteration(ctx, iteration, runIDs, centers, distortion)

	for _, ev := range events {
		if ev.dropped > 0 {
			logger.LogClusterDropped(ctx, ev.run, iteration, ev.dropped, len(runs[ev.run].centers))
			mc.RecordClusterDropped(ev.dropped)
		}
		switch {
		case ev.degenerate:
			logger.LogRunDegenerate(ctx, ev.run, iteration)
		case ev.converged:
			logger.LogRunConverged(ctx, ev.run, runs[ev.run].convergedAt, runs[ev.run].cost)
			mc.RecordRunConverged(runs[ev.run].convergedAt)
		}
	}
}
