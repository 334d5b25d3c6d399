package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knnlab/knn/distance"
)

func TestDataset(t *testing.T) {
	ds := Dataset{
		NewPoint([]float64{1, 1}, "A"),
		NewPoint([]float64{1, 2}, "A"),
		NewPoint([]float64{9, 9}, "B"),
	}

	t.Run("Len", func(t *testing.T) {
		assert.Equal(t, 3, ds.Len())
	})

	t.Run("Dimension", func(t *testing.T) {
		assert.Equal(t, 2, ds.Dimension())
		assert.Equal(t, 0, Dataset{}.Dimension())
	})

	t.Run("Labels", func(t *testing.T) {
		assert.Equal(t, []string{"A", "A", "B"}, ds.Labels())
	})

	t.Run("Classes", func(t *testing.T) {
		assert.Equal(t, []string{"A", "B"}, ds.Classes())

		unsorted := Dataset{
			NewPoint([]float64{0}, "z"),
			NewPoint([]float64{0}, "a"),
			NewPoint([]float64{0}, "z"),
		}
		assert.Equal(t, []string{"a", "z"}, unsorted.Classes())
	})

	t.Run("Validate", func(t *testing.T) {
		require.NoError(t, ds.Validate())
		require.NoError(t, Dataset{}.Validate())

		bad := Dataset{
			NewPoint([]float64{1, 2}, "A"),
			NewPoint([]float64{1, 2, 3}, "B"),
		}

		var dm *distance.ErrDimensionMismatch
		require.ErrorAs(t, bad.Validate(), &dm)
		assert.Equal(t, 2, dm.Expected)
		assert.Equal(t, 3, dm.Actual)
	})
}

func TestHeuristicK(t *testing.T) {
	tests := []struct {
		n        int
		expected int
	}{
		{0, 0},
		{-5, 0},
		{1, 1},
		{2, 2},
		{4, 2},
		{9, 3},
		{10, 4},
		{100, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, HeuristicK(tt.n), "n=%d", tt.n)
	}
}
