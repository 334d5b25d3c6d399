package knn

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knnlab/knn/dataset"
	"github.com/knnlab/knn/distance"
)

func trainingSet() dataset.Dataset {
	return dataset.Dataset{
		dataset.NewPoint([]float64{1, 1}, "A"),
		dataset.NewPoint([]float64{1, 2}, "A"),
		dataset.NewPoint([]float64{9, 9}, "B"),
	}
}

func TestNew(t *testing.T) {
	t.Run("EmptyTrainingSet", func(t *testing.T) {
		_, err := New(dataset.Dataset{}, 1)
		require.ErrorIs(t, err, ErrEmptyTrainingSet)
	})

	t.Run("InvalidK", func(t *testing.T) {
		_, err := New(trainingSet(), 0)
		require.ErrorIs(t, err, ErrInvalidK)

		_, err = New(trainingSet(), -3)
		require.ErrorIs(t, err, ErrInvalidK)
	})

	t.Run("ClampsK", func(t *testing.T) {
		c, err := New(trainingSet(), 100)
		require.NoError(t, err)
		assert.Equal(t, 3, c.K())
	})

	t.Run("UnsupportedMetric", func(t *testing.T) {
		_, err := New(trainingSet(), 1, func(o *Options) {
			o.Metric = distance.Metric(42)
		})
		require.Error(t, err)
	})
}

func TestClassify(t *testing.T) {
	ctx := context.Background()
	query := dataset.NewPoint([]float64{1, 1.5}, "")

	t.Run("K1NearestLabel", func(t *testing.T) {
		c, err := New(trainingSet(), 1)
		require.NoError(t, err)

		label, err := c.Classify(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, "A", label)
	})

	t.Run("K3Majority", func(t *testing.T) {
		c, err := New(trainingSet(), 3)
		require.NoError(t, err)

		label, err := c.Classify(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, "A", label)
	})

	t.Run("KClampingMatchesFullSet", func(t *testing.T) {
		clamped, err := New(trainingSet(), 50)
		require.NoError(t, err)
		full, err := New(trainingSet(), 3)
		require.NoError(t, err)

		a, err := clamped.Classify(ctx, query)
		require.NoError(t, err)
		b, err := full.Classify(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, b, a)
	})

	t.Run("Idempotent", func(t *testing.T) {
		c, err := New(trainingSet(), 3)
		require.NoError(t, err)

		first, err := c.Classify(ctx, query)
		require.NoError(t, err)
		for range 10 {
			again, err := c.Classify(ctx, query)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		c, err := New(trainingSet(), 1)
		require.NoError(t, err)

		_, err = c.Classify(ctx, dataset.NewPoint([]float64{1, 2, 3}, ""))
		var dm *distance.ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
	})

	t.Run("VoteTieLexicographic", func(t *testing.T) {
		// Two labels at identical distances from the query; "A" wins the tie.
		training := dataset.Dataset{
			dataset.NewPoint([]float64{-1, 0}, "B"),
			dataset.NewPoint([]float64{1, 0}, "A"),
		}

		c, err := New(training, 2)
		require.NoError(t, err)

		label, err := c.Classify(ctx, dataset.NewPoint([]float64{0, 0}, ""))
		require.NoError(t, err)
		assert.Equal(t, "A", label)
	})

	t.Run("SquaredMetricSameNeighbors", func(t *testing.T) {
		c, err := New(trainingSet(), 3, func(o *Options) {
			o.Metric = distance.MetricSquaredEuclidean
		})
		require.NoError(t, err)

		label, err := c.Classify(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, "A", label)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		c, err := New(trainingSet(), 1)
		require.NoError(t, err)

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err = c.Classify(canceled, query)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestClassifyFunc(t *testing.T) {
	label, err := Classify(context.Background(), trainingSet(), dataset.NewPoint([]float64{1, 1.5}, ""), 3)
	require.NoError(t, err)
	assert.Equal(t, "A", label)

	_, err = Classify(context.Background(), dataset.Dataset{}, dataset.NewPoint([]float64{0}, ""), 1)
	require.ErrorIs(t, err, ErrEmptyTrainingSet)
}

func TestNeighbors(t *testing.T) {
	ctx := context.Background()

	c, err := New(trainingSet(), 2)
	require.NoError(t, err)

	neighbors, err := c.Neighbors(ctx, dataset.NewPoint([]float64{1, 1.5}, ""))
	require.NoError(t, err)
	require.Len(t, neighbors, 2)

	assert.Equal(t, "A", neighbors[0].Label)
	assert.Equal(t, "A", neighbors[1].Label)
	assert.InDelta(t, 0.5, neighbors[0].Distance, 1e-12)
	assert.LessOrEqual(t, neighbors[0].Distance, neighbors[1].Distance)

	t.Run("EqualDistancesFollowInputOrder", func(t *testing.T) {
		training := dataset.Dataset{
			dataset.NewPoint([]float64{0, 2}, "up"),
			dataset.NewPoint([]float64{2, 0}, "right"),
			dataset.NewPoint([]float64{0, -2}, "down"),
		}

		c, err := New(training, 3)
		require.NoError(t, err)

		neighbors, err := c.Neighbors(ctx, dataset.NewPoint([]float64{0, 0}, ""))
		require.NoError(t, err)
		require.Len(t, neighbors, 3)
		assert.Equal(t, "up", neighbors[0].Label)
		assert.Equal(t, "right", neighbors[1].Label)
		assert.Equal(t, "down", neighbors[2].Label)
	})
}

func TestClassifyBatch(t *testing.T) {
	ctx := context.Background()

	training := dataset.Dataset{
		dataset.NewPoint([]float64{0, 0}, "origin"),
		dataset.NewPoint([]float64{10, 10}, "far"),
		dataset.NewPoint([]float64{10, 11}, "far"),
	}

	c, err := New(training, 1, func(o *Options) {
		o.MaxConcurrency = 2
	})
	require.NoError(t, err)

	queries := []dataset.Point{
		dataset.NewPoint([]float64{0.1, 0.1}, ""),
		dataset.NewPoint([]float64{9, 9}, ""),
		dataset.NewPoint([]float64{-1, -1}, ""),
		dataset.NewPoint([]float64{11, 11}, ""),
	}

	labels, err := c.ClassifyBatch(ctx, queries)
	require.NoError(t, err)
	assert.Equal(t, []string{"origin", "far", "origin", "far"}, labels)

	t.Run("MatchesSequential", func(t *testing.T) {
		for i, q := range queries {
			label, err := c.Classify(ctx, q)
			require.NoError(t, err)
			assert.Equal(t, labels[i], label)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		labels, err := c.ClassifyBatch(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, labels)
	})

	t.Run("PropagatesError", func(t *testing.T) {
		bad := append(queries, dataset.NewPoint([]float64{1}, ""))
		_, err := c.ClassifyBatch(ctx, bad)
		var dm *distance.ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
	})
}

func TestMetricsCollection(t *testing.T) {
	ctx := context.Background()

	collector := &BasicMetricsCollector{}
	c, err := New(trainingSet(), 3, func(o *Options) {
		o.Metrics = collector
	})
	require.NoError(t, err)

	_, err = c.Classify(ctx, dataset.NewPoint([]float64{1, 1.5}, ""))
	require.NoError(t, err)
	_, err = c.Classify(ctx, dataset.NewPoint([]float64{1}, ""))
	require.Error(t, err)

	_, err = c.ClassifyBatch(ctx, []dataset.Point{
		dataset.NewPoint([]float64{1, 1}, ""),
		dataset.NewPoint([]float64{2, 2}, ""),
	})
	require.NoError(t, err)

	stats := collector.GetStats()
	assert.Equal(t, int64(2), stats.ClassifyCount)
	assert.Equal(t, int64(1), stats.ClassifyErrors)
	assert.Equal(t, int64(1), stats.BatchCount)
	assert.Equal(t, int64(2), stats.BatchItems)
	assert.Equal(t, int64(0), stats.BatchFailed)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	m.RecordClassify(1, time.Millisecond, nil)
	m.RecordBatchClassify(1, 0, time.Millisecond)
}
