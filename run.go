package kmeans

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/kmeans/internal/aggregate"
	"github.com/hupe1980/kmeans/space"
)

// runState is the state of one run between two passes. Values are never
// modified once produced; step builds the next generation.
type runState[C any] struct {
	centers     []C
	cost        float64
	active      bool
	convergedAt int
	degenerate  bool
}

// slot is one cluster position after a pass. Absent slots are clusters that
// attracted no points.
type slot[C any] struct {
	center  C
	present bool
}

func compact[C any](slots []slot[C]) []C {
	out := make([]C, 0, len(slots))
	for _, s := range slots {
		if s.present {
			out = append(out, s.center)
		}
	}
	return out
}

func initialRuns[C any](initial [][]C) ([]runState[C], *roaring.Bitmap) {
	runs := make([]runState[C], len(initial))
	for r, centers := range initial {
		runs[r] = runState[C]{
			centers: append([]C(nil), centers...),
			active:  true,
		}
	}
	active := roaring.New()
	active.AddRange(0, uint64(len(initial)))
	return runs, active
}

// runEvent records what happened to one active run in a pass.
type runEvent struct {
	run        int
	dropped    int
	converged  bool
	degenerate bool
}

// step folds the result of a pass into the run states. active lists the run
// indexes of the pass in snapshot order. Runs outside active are carried over
// unchanged.
func step[P, C, S any](
	sp space.Space[P, C, S],
	prev []runState[C],
	active []uint32,
	res *aggregate.Result[P, S],
	iteration int,
) ([]runState[C], *roaring.Bitmap, []runEvent) {
	next := make([]runState[C], len(prev))
	copy(next, prev)

	stillActive := roaring.New()
	events := make([]runEvent, 0, len(active))

	for pos, r := range active {
		old := prev[r]
		slots := make([]slot[C], len(old.centers))
		moved := false
		dropped := 0

		for j, center := range old.centers {
			c := res.Centroid(pos, j)
			if c == nil || c.IsEmpty() {
				moved = true
				dropped++
				continue
			}
			candidate := sp.PointToCenter(sp.CentroidToPoint(c))
			if sp.CenterMoved(candidate, center) {
				moved = true
			}
			slots[j] = slot[C]{center: candidate, present: true}
		}

		ns := runState[C]{
			centers: compact(slots),
			cost:    res.Distortion[pos],
			active:  moved,
		}

		ev := runEvent{run: int(r), dropped: dropped}
		switch {
		case len(ns.centers) == 0:
			ns.active = false
			ns.degenerate = true
			ns.cost = math.Inf(1)
			ev.degenerate = true
		case !ns.active:
			ns.convergedAt = iteration + 1
			ev.converged = true
		}

		if ns.active {
			stillActive.Add(r)
		}
		next[r] = ns
		events = append(events, ev)
	}

	return next, stillActive, events
}

// selectBest returns the index of the non-degenerate run with the lowest
// cost. Equal costs resolve to the lowest index.
func selectBest[C any](runs []runState[C]) (int, bool) {
	best := -1
	for r := range runs {
		if runs[r].degenerate {
			continue
		}
		if best < 0 || runs[r].cost < runs[best].cost {
			best = r
		}
	}
	return best, best >= 0
}

func summarize[C any](runs []runState[C]) []RunSummary {
	out := make([]RunSummary, len(runs))
	for r, s := range runs {
		out[r] = RunSummary{
			Run:         r,
			K:           len(s.centers),
			Cost:        s.cost,
			Converged:   s.convergedAt > 0,
			ConvergedAt: s.convergedAt,
			Degenerate:  s.degenerate,
		}
	}
	return out
}
