package dataset

import "math"

// HeuristicK computes a neighbor count from the training set size using the
// square-root rule: ceil(sqrt(n)). It returns 0 for n <= 0; the classifier
// accepts the result as a plain parameter and is agnostic to how it was
// derived.
func HeuristicK(n int) int {
	if n <= 0 {
		return 0
	}

	return int(math.Ceil(math.Sqrt(float64(n))))
}
