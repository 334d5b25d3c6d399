package dataset

import (
	"sort"

	"github.com/knnlab/knn/distance"
)

// Dataset is an ordered collection of labeled points. It is owned by the
// caller and read-only from the classifier's perspective.
type Dataset []Point

// Len returns the number of points in the dataset.
func (d Dataset) Len() int { return len(d) }

// Dimension returns the feature-vector length of the first point, or 0 for
// an empty dataset. It does not verify that all points agree; use Validate.
func (d Dataset) Dimension() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0].Features)
}

// Labels returns the label of every point, in dataset order.
func (d Dataset) Labels() []string {
	labels := make([]string, len(d))
	for i, p := range d {
		labels[i] = p.Label
	}
	return labels
}

// Classes returns the distinct labels present in the dataset, sorted
// lexicographically.
func (d Dataset) Classes() []string {
	seen := make(map[string]struct{}, len(d))
	var classes []string
	for _, p := range d {
		if _, ok := seen[p.Label]; ok {
			continue
		}
		seen[p.Label] = struct{}{}
		classes = append(classes, p.Label)
	}
	sort.Strings(classes)
	return classes
}

// Validate checks that every point has the same feature-vector length.
// It returns a *distance.ErrDimensionMismatch for the first point that
// disagrees with the first one.
func (d Dataset) Validate() error {
	if len(d) == 0 {
		return nil
	}

	dim := len(d[0].Features)
	for _, p := range d[1:] {
		if len(p.Features) != dim {
			return &distance.ErrDimensionMismatch{Expected: dim, Actual: len(p.Features)}
		}
	}

	return nil
}
