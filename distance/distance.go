package distance

import (
	"fmt"
	"math"
)

// ErrDimensionMismatch indicates that two vectors being compared do not have
// the same length.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	// MetricEuclidean is the straight-line (L2) distance.
	MetricEuclidean Metric = iota
	// MetricSquaredEuclidean is the squared L2 distance. It selects the same
	// nearest neighbors as MetricEuclidean while skipping the square root.
	MetricSquaredEuclidean
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricSquaredEuclidean:
		return "SquaredEuclidean"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Func is a function type for distance calculation.
type Func func(a, b []float64) (float64, error)

// SquaredEuclidean calculates the squared L2 distance between two vectors.
func SquaredEuclidean(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return sum, nil
}

// Euclidean calculates the L2 (straight-line) distance between two vectors.
func Euclidean(a, b []float64) (float64, error) {
	sum, err := SquaredEuclidean(a, b)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(sum), nil
}

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricSquaredEuclidean:
		return SquaredEuclidean, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
