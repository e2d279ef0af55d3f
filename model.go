package kmeans

import "slices"

// RunSummary describes the final state of one run.
type RunSummary struct {
	// Run is the index of the run's initial centers.
	Run int
	// K is the number of centers the run ended with.
	K int
	// Cost is the last distortion computed for the run. It is +Inf for
	// degenerate runs and 0 for runs that never took part in a pass.
	Cost float64
	// Converged reports whether the run stopped moving before the cap.
	Converged bool
	// ConvergedAt is the number of passes after which the run stopped moving,
	// or 0 if it did not converge.
	ConvergedAt int
	// Degenerate reports whether the run lost all of its centers.
	Degenerate bool
}

// Model is the result of a clustering call: the centers of the lowest-cost run.
type Model[C any] struct {
	centers    []C
	cost       float64
	run        int
	iterations int
	runs       []RunSummary
}

// Centers returns a copy of the winning centers, in cluster order.
func (m *Model[C]) Centers() []C {
	return slices.Clone(m.centers)
}

// K returns the number of winning centers.
func (m *Model[C]) K() int {
	return len(m.centers)
}

// Cost returns the distortion of the winning run.
func (m *Model[C]) Cost() float64 {
	return m.cost
}

// Run returns the index of the winning run.
func (m *Model[C]) Run() int {
	return m.run
}

// Iterations returns the number of data passes performed.
func (m *Model[C]) Iterations() int {
	return m.iterations
}

// Runs returns a summary of every run, indexed like the initial centers.
func (m *Model[C]) Runs() []RunSummary {
	return slices.Clone(m.runs)
}
