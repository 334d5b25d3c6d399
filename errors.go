package knn

import "errors"

var (
	// ErrEmptyTrainingSet is returned when there are no training points to
	// classify against. The classifier never falls back to an arbitrary label.
	ErrEmptyTrainingSet = errors.New("empty training set")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")
)
