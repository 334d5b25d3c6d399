package testutil

import (
	"math/rand"
	"sync"

	"github.com/knnlab/knn/dataset"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// NormFloat64 returns a normally distributed float64 with mean 0 and
// standard deviation 1.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// Cluster describes one labeled Gaussian blob of points.
type Cluster struct {
	Label  string    // Label assigned to every generated point.
	Center []float64 // Center of the blob.
	Spread float64   // Standard deviation around the center per dimension.
	Size   int       // Number of points to generate.
}

// LabeledClusters generates a dataset of Gaussian blobs, one per cluster, in
// cluster order. All centers must share the same dimensionality.
func (r *RNG) LabeledClusters(clusters []Cluster) dataset.Dataset {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ds dataset.Dataset
	for _, c := range clusters {
		for range c.Size {
			features := make([]float64, len(c.Center))
			for j, center := range c.Center {
				features[j] = center + r.rand.NormFloat64()*c.Spread
			}
			ds = append(ds, dataset.NewPoint(features, c.Label))
		}
	}

	return ds
}
