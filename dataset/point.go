package dataset

// Point is one observation: an ordered, fixed-length feature vector plus a
// label. A query point may carry an empty label. Points are treated as
// immutable once constructed; callers must not mutate Features afterwards.
type Point struct {
	Features []float64
	Label    string
}

// NewPoint creates a new Point with the given features and label.
func NewPoint(features []float64, label string) Point {
	return Point{Features: features, Label: label}
}

// Dimension returns the length of the point's feature vector.
func (p Point) Dimension() int {
	return len(p.Features)
}
