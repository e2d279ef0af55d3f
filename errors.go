package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRuns is returned when Cluster is called without initial centers.
	ErrNoRuns = errors.New("kmeans: at least one run is required")
	// ErrNilDataset is returned when Cluster is called with a nil dataset.
	ErrNilDataset = errors.New("kmeans: dataset is nil")
	// ErrNilSpace is returned when New is called with a nil space.
	ErrNilSpace = errors.New("kmeans: space is nil")
	// ErrInvalidMaxIterations is returned for a negative iteration cap.
	ErrInvalidMaxIterations = errors.New("kmeans: max iterations must not be negative")
	// ErrAllRunsDegenerate is returned when every run lost all of its centers,
	// which happens when the dataset holds no points.
	ErrAllRunsDegenerate = errors.New("kmeans: all runs lost their centers")
)

// ErrEmptyRun indicates a run supplied without initial centers.
type ErrEmptyRun struct {
	Run int
}

func (e *ErrEmptyRun) Error() string {
	return fmt.Sprintf("kmeans: run %d has no initial centers", e.Run)
}
