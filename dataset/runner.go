package dataset

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/kmeans/resource"
)

// Runner executes one task per partition and returns once every task has
// finished (the barrier). The first task error cancels the remaining tasks
// and is returned.
type Runner interface {
	Run(ctx context.Context, partitions int, task func(ctx context.Context, part int) error) error
}

type sequential struct{}

// Sequential returns a Runner that executes partitions one after another on
// the calling goroutine.
func Sequential() Runner {
	return sequential{}
}

func (sequential) Run(ctx context.Context, partitions int, task func(ctx context.Context, part int) error) error {
	for part := range partitions {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := task(ctx, part); err != nil {
			return err
		}
	}
	return nil
}

// ParallelOption configures Parallel.
type ParallelOption func(*parallel)

// WithParallelism bounds the number of partition tasks in flight.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithParallelism(n int) ParallelOption {
	return func(p *parallel) {
		p.limit = n
	}
}

// WithScanController makes every partition task hold a scan slot of rc for
// its duration.
func WithScanController(rc *resource.Controller) ParallelOption {
	return func(p *parallel) {
		p.rc = rc
	}
}

type parallel struct {
	limit int
	rc    *resource.Controller
}

// Parallel returns a Runner that executes partitions concurrently.
func Parallel(opts ...ParallelOption) Runner {
	p := &parallel{}
	for _, opt := range opts {
		opt(p)
	}
	if p.limit < 1 {
		p.limit = runtime.GOMAXPROCS(0)
	}
	return p
}

func (p *parallel) Run(ctx context.Context, partitions int, task func(ctx context.Context, part int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)

	for part := range partitions {
		g.Go(func() error {
			if err := p.rc.AcquireScan(gctx); err != nil {
				return err
			}
			defer p.rc.ReleaseScan()

			if err := gctx.Err(); err != nil {
				return err
			}
			return task(gctx, part)
		})
	}

	return g.Wait()
}
