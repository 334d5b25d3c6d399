// Package evaluate provides classification quality metrics and a holdout
// evaluation harness for the classifier.
package evaluate

import (
	"context"
	"fmt"
	"sort"

	"github.com/knnlab/knn"
	"github.com/knnlab/knn/dataset"
)

// Accuracy returns the fraction of predictions matching the expected labels.
func Accuracy(want, got []string) float64 {
	if len(want) == 0 || len(want) != len(got) {
		return 0
	}

	c := 0
	for i := range want {
		if want[i] == got[i] {
			c++
		}
	}

	return float64(c) / float64(len(want))
}

// ConfusionMatrix counts predictions per (expected, predicted) label pair.
type ConfusionMatrix struct {
	counts map[string]map[string]int
	total  int
}

// NewConfusionMatrix builds a confusion matrix from parallel slices of
// expected and predicted labels.
func NewConfusionMatrix(want, got []string) (*ConfusionMatrix, error) {
	if len(want) != len(got) {
		return nil, fmt.Errorf("label slices differ in length: %d vs %d", len(want), len(got))
	}

	m := &ConfusionMatrix{counts: make(map[string]map[string]int)}
	for i := range want {
		row := m.counts[want[i]]
		if row == nil {
			row = make(map[string]int)
			m.counts[want[i]] = row
		}
		row[got[i]]++
		m.total++
	}

	return m, nil
}

// Count returns how many points with expected label want were predicted as got.
func (m *ConfusionMatrix) Count(want, got string) int {
	return m.counts[want][got]
}

// Total returns the number of predictions recorded.
func (m *ConfusionMatrix) Total() int {
	return m.total
}

// Classes returns every label appearing as expected or predicted, sorted
// lexicographically.
func (m *ConfusionMatrix) Classes() []string {
	seen := make(map[string]struct{})
	for want, row := range m.counts {
		seen[want] = struct{}{}
		for got := range row {
			seen[got] = struct{}{}
		}
	}

	classes := make([]string, 0, len(seen))
	for label := range seen {
		classes = append(classes, label)
	}
	sort.Strings(classes)

	return classes
}

// Precision returns, of the points predicted as label, the fraction whose
// expected label matched. It returns 0 when label was never predicted.
func (m *ConfusionMatrix) Precision(label string) float64 {
	predicted := 0
	for _, row := range m.counts {
		predicted += row[label]
	}
	if predicted == 0 {
		return 0
	}

	return float64(m.Count(label, label)) / float64(predicted)
}

// Recall returns, of the points expected to be label, the fraction predicted
// as label. It returns 0 when label never occurs as an expected label.
func (m *ConfusionMatrix) Recall(label string) float64 {
	expected := 0
	for _, count := range m.counts[label] {
		expected += count
	}
	if expected == 0 {
		return 0
	}

	return float64(m.Count(label, label)) / float64(expected)
}

// HoldoutResult reports the outcome of a holdout evaluation.
type HoldoutResult struct {
	Accuracy  float64
	Confusion *ConfusionMatrix
	TrainSize int
	TestSize  int
	K         int
}

// Holdout splits the dataset into train and test folds, builds a classifier
// over the train fold with k = HeuristicK(train size), classifies the test
// fold, and reports accuracy. The split is seeded and reproducible.
func Holdout(ctx context.Context, ds dataset.Dataset, testRatio float64, seed int64, optFns ...func(o *knn.Options)) (*HoldoutResult, error) {
	train, test := ds.Split(testRatio, seed)

	c, err := knn.New(train, dataset.HeuristicK(train.Len()), optFns...)
	if err != nil {
		return nil, err
	}

	got, err := c.ClassifyBatch(ctx, test)
	if err != nil {
		return nil, err
	}

	confusion, err := NewConfusionMatrix(test.Labels(), got)
	if err != nil {
		return nil, err
	}

	return &HoldoutResult{
		Accuracy:  Accuracy(test.Labels(), got),
		Confusion: confusion,
		TrainSize: train.Len(),
		TestSize:  test.Len(),
		K:         c.K(),
	}, nil
}
