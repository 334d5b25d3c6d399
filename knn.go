package knn

import (
	"container/heap"
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/knnlab/knn/dataset"
	"github.com/knnlab/knn/distance"
	"github.com/knnlab/knn/queue"
)

// Neighbor pairs a computed distance with the label of the training point it
// came from.
type Neighbor struct {
	Label    string
	Distance float64
}

// Classifier predicts the label of a query point by majority vote among its
// k nearest training points. It is stateless between calls and safe for
// concurrent use; the training set is read-only for the classifier's
// lifetime and must not be mutated by the caller.
type Classifier struct {
	training     dataset.Dataset
	k            int
	distanceFunc distance.Func
	logger       *Logger
	metrics      MetricsCollector
	opts         Options
}

// New creates a new classifier over the given training set.
//
// k is clamped to the training set size when it exceeds it, so requesting
// more neighbors than exist behaves as if every training point were
// selected. An empty training set yields ErrEmptyTrainingSet and k < 1
// yields ErrInvalidK.
func New(training dataset.Dataset, k int, optFns ...func(o *Options)) (*Classifier, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if len(training) == 0 {
		return nil, ErrEmptyTrainingSet
	}

	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}

	if k > len(training) {
		k = len(training)
	}

	distanceFunc, err := distance.Provider(opts.Metric)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = NoopLogger()
	}

	metrics := opts.Metrics
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}

	return &Classifier{
		training:     training,
		k:            k,
		distanceFunc: distanceFunc,
		logger:       logger,
		metrics:      metrics,
		opts:         opts,
	}, nil
}

// K returns the effective neighbor count, after clamping.
func (c *Classifier) K() int { return c.k }

// Classify returns the majority label among the k training points nearest to
// query. Ties between labels with equal vote counts resolve to the
// lexicographically smallest label, so identical inputs always produce
// identical results.
func (c *Classifier) Classify(ctx context.Context, query dataset.Point) (string, error) {
	start := time.Now()

	label, err := c.classify(ctx, query)

	c.metrics.RecordClassify(c.k, time.Since(start), err)
	c.logger.LogClassify(ctx, c.k, label, err)

	return label, err
}

func (c *Classifier) classify(ctx context.Context, query dataset.Point) (string, error) {
	neighbors, err := c.neighbors(ctx, query)
	if err != nil {
		return "", err
	}

	labels := make([]string, len(neighbors))
	for i, n := range neighbors {
		labels[i] = n.Label
	}

	label, ok := majorityLabel(labels)
	if !ok {
		// Unreachable while the training set is non-empty and k >= 1.
		return "", ErrEmptyTrainingSet
	}

	return label, nil
}

// Neighbors returns the k training points nearest to query, ordered by
// ascending distance. Equal distances are ordered by position in the
// training set.
func (c *Classifier) Neighbors(ctx context.Context, query dataset.Point) ([]Neighbor, error) {
	return c.neighbors(ctx, query)
}

func (c *Classifier) neighbors(ctx context.Context, query dataset.Point) ([]Neighbor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pq := &queue.PriorityQueue{Items: make([]*queue.Item, 0, len(c.training))}

	for i, p := range c.training {
		d, err := c.distanceFunc(query.Features, p.Features)
		if err != nil {
			return nil, fmt.Errorf("training point %d: %w", i, err)
		}

		heap.Push(pq, &queue.Item{Label: p.Label, Distance: d, Ordinal: i})
	}

	neighbors := make([]Neighbor, 0, c.k)
	for range c.k {
		item, ok := heap.Pop(pq).(*queue.Item)
		if !ok {
			break
		}
		neighbors = append(neighbors, Neighbor{Label: item.Label, Distance: item.Distance})
	}

	return neighbors, nil
}

// ClassifyBatch classifies every query concurrently and returns the
// predicted labels in query order. It stops at the first error.
func (c *Classifier) ClassifyBatch(ctx context.Context, queries []dataset.Point) ([]string, error) {
	start := time.Now()

	limit := c.opts.MaxConcurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var failed atomic.Int64

	labels := make([]string, len(queries))
	for i, q := range queries {
		g.Go(func() error {
			label, err := c.classify(ctx, q)
			if err != nil {
				failed.Add(1)
				return fmt.Errorf("query %d: %w", i, err)
			}
			labels[i] = label
			return nil
		})
	}

	err := g.Wait()

	c.metrics.RecordBatchClassify(len(queries), int(failed.Load()), time.Since(start))
	c.logger.LogBatchClassify(ctx, len(queries), int(failed.Load()))

	if err != nil {
		return nil, err
	}

	return labels, nil
}

// Classify is a convenience wrapper that builds a one-shot classifier and
// classifies a single query point.
func Classify(ctx context.Context, training dataset.Dataset, query dataset.Point, k int, optFns ...func(o *Options)) (string, error) {
	c, err := New(training, k, optFns...)
	if err != nil {
		return "", err
	}

	return c.Classify(ctx, query)
}
