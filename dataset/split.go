package dataset

import "math/rand"

// Shuffle returns a new dataset with the points in seeded pseudo-random
// order. The receiver is not modified.
func (d Dataset) Shuffle(seed int64) Dataset {
	rng := rand.New(rand.NewSource(seed))

	out := make(Dataset, len(d))
	for i, idx := range rng.Perm(len(d)) {
		out[i] = d[idx]
	}

	return out
}

// Split partitions the dataset into train and test subsets. testRatio is the
// fraction of points assigned to the test subset, clamped to [0, 1]. The
// split is seeded and reproducible.
func (d Dataset) Split(testRatio float64, seed int64) (train, test Dataset) {
	if testRatio < 0 {
		testRatio = 0
	}
	if testRatio > 1 {
		testRatio = 1
	}

	shuffled := d.Shuffle(seed)
	nTest := int(float64(len(d)) * testRatio)

	return shuffled[nTest:], shuffled[:nTest]
}
