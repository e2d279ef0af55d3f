package dataset

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmeans/resource"
)

func collect[P any](t *testing.T, d Dataset[P]) [][]P {
	t.Helper()
	out := make([][]P, d.NumPartitions())
	for part := range out {
		require.NoError(t, d.Scan(context.Background(), part, func(p P) {
			out[part] = append(out[part], p)
		}))
	}
	return out
}

func TestFromSlice(t *testing.T) {
	points := []int{0, 1, 2, 3, 4, 5, 6}

	tests := []struct {
		name       string
		partitions int
		want       [][]int
	}{
		{"Single", 1, [][]int{{0, 1, 2, 3, 4, 5, 6}}},
		{"ZeroMeansOne", 0, [][]int{{0, 1, 2, 3, 4, 5, 6}}},
		{"Balanced", 3, [][]int{{0, 1}, {2, 3}, {4, 5, 6}}},
		{"MorePartitionsThanPoints", 9, [][]int{nil, {0}, {1}, {2}, nil, {3}, {4}, {5}, {6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromSlice(points, tt.partitions)
			assert.Equal(t, 7, s.Len())
			got := collect[int](t, s)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.ElementsMatch(t, tt.want[i], got[i], "partition %d", i)
			}
		})
	}
}

func TestFromSlice_Scan(t *testing.T) {
	s := FromSlice([]int{1, 2}, 2)

	t.Run("InvalidPartition", func(t *testing.T) {
		err := s.Scan(context.Background(), 2, func(int) {})
		assert.ErrorIs(t, err, ErrInvalidPartition)
		err = s.Scan(context.Background(), -1, func(int) {})
		assert.ErrorIs(t, err, ErrInvalidPartition)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := s.Scan(ctx, 0, func(int) { t.Fatal("unexpected point") })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func runners() map[string]Runner {
	return map[string]Runner{
		"Sequential":       Sequential(),
		"Parallel":         Parallel(),
		"ParallelLimited":  Parallel(WithParallelism(2)),
		"ParallelAdmitted": Parallel(WithScanController(resource.NewController(resource.Config{MaxConcurrentScans: 1}))),
	}
}

func TestRunner_RunsEveryPartition(t *testing.T) {
	for name, r := range runners() {
		t.Run(name, func(t *testing.T) {
			var seen [16]atomic.Int32
			err := r.Run(context.Background(), len(seen), func(_ context.Context, part int) error {
				seen[part].Add(1)
				return nil
			})
			require.NoError(t, err)
			for i := range seen {
				assert.Equal(t, int32(1), seen[i].Load(), "partition %d", i)
			}
		})
	}
}

func TestRunner_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	for name, r := range runners() {
		t.Run(name, func(t *testing.T) {
			err := r.Run(context.Background(), 8, func(_ context.Context, part int) error {
				if part == 3 {
					return boom
				}
				return nil
			})
			assert.ErrorIs(t, err, boom)
		})
	}
}

func TestRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, r := range runners() {
		t.Run(name, func(t *testing.T) {
			var calls atomic.Int32
			err := r.Run(ctx, 4, func(context.Context, int) error {
				calls.Add(1)
				return nil
			})
			assert.ErrorIs(t, err, context.Canceled)
			assert.Zero(t, calls.Load())
		})
	}
}

func TestParallel_RespectsScanSlots(t *testing.T) {
	rc := resource.NewController(resource.Config{MaxConcurrentScans: 2})
	r := Parallel(WithParallelism(8), WithScanController(rc))

	var inFlight, peak atomic.Int32
	err := r.Run(context.Background(), 32, func(context.Context, int) error {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		inFlight.Add(-1)
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestMapReduce(t *testing.T) {
	points := make([]int, 100)
	for i := range points {
		points[i] = i
	}

	countByParity := func(_ int, local map[int]int, p int) {
		local[p%2] += p
	}
	sum := func(dst, src int) int { return dst + src }

	for name, r := range runners() {
		for _, partitions := range []int{1, 3, 7, 200} {
			t.Run(fmt.Sprintf("%s/%d", name, partitions), func(t *testing.T) {
				got, err := MapReduce(context.Background(), r, FromSlice(points, partitions), countByParity, sum)
				require.NoError(t, err)
				assert.Equal(t, map[int]int{0: 2450, 1: 2500}, got)
			})
		}
	}
}

func TestMapReduce_MergesInPartitionOrder(t *testing.T) {
	points := []string{"a", "b", "c", "d", "e", "f"}
	concat := func(dst, src string) string { return dst + src }

	for name, r := range runners() {
		t.Run(name, func(t *testing.T) {
			got, err := MapReduce(context.Background(), r, FromSlice(points, 6),
				func(_ int, local map[string]string, p string) { local["k"] += p },
				concat,
			)
			require.NoError(t, err)
			assert.Equal(t, "abcdef", got["k"])
		})
	}
}

func TestMapReduce_ScanError(t *testing.T) {
	d := &failingDataset{fail: 1}
	_, err := MapReduce(context.Background(), Sequential(), Dataset[int](d),
		func(int, map[int]int, int) {},
		func(dst, _ int) int { return dst },
	)
	assert.ErrorIs(t, err, errScan)
}

var errScan = errors.New("scan failed")

type failingDataset struct {
	fail int
}

func (d *failingDataset) NumPartitions() int { return 2 }

func (d *failingDataset) Scan(_ context.Context, part int, fn func(int)) error {
	if part == d.fail {
		return errScan
	}
	fn(part)
	return nil
}

func TestAccumulator(t *testing.T) {
	acc := NewAccumulator(3, 2)
	acc.Add(0, 0, 1.5)
	acc.Add(1, 0, 2)
	acc.Add(2, 1, 4)
	acc.Add(2, 1, 0.25)
	assert.Equal(t, []float64{3.5, 4.25}, acc.Sum())

	assert.Equal(t, []float64{0, 0}, NewAccumulator(0, 2).Sum())
}
