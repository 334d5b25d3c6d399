// Package distance provides distance calculations between float64 feature
// vectors. All functions verify that both vectors have the same length and
// fail fast with ErrDimensionMismatch when they do not.
package distance
