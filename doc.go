// Package knn classifies unlabeled points by majority vote among their k
// nearest labeled points, using Euclidean distance over float64 feature
// vectors.
//
// # Quick Start
//
//	training := dataset.Dataset{
//	    dataset.NewPoint([]float64{1, 1}, "A"),
//	    dataset.NewPoint([]float64{1, 2}, "A"),
//	    dataset.NewPoint([]float64{9, 9}, "B"),
//	}
//
//	c, err := knn.New(training, dataset.HeuristicK(training.Len()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	label, err := c.Classify(ctx, dataset.NewPoint([]float64{1, 1.5}, ""))
//
// Classification is a pure function of its inputs: the classifier holds no
// state between calls, the training set is never mutated, and vote ties are
// broken deterministically (lexicographically smallest label), so repeated
// calls with identical inputs return identical results.
//
// # Behavior
//
//   - k greater than the training set size is clamped to the training set size.
//   - An empty training set yields ErrEmptyTrainingSet; k < 1 yields ErrInvalidK.
//   - A query whose dimension differs from a training point's yields a
//     *distance.ErrDimensionMismatch.
//
// Batch classification across many queries runs concurrently; see
// Classifier.ClassifyBatch.
package knn
