package knn

// majorityLabel returns the most frequent label. When several labels share
// the maximum count, the lexicographically smallest one wins, keeping the
// result independent of map iteration order. ok is false for an empty input.
func majorityLabel(labels []string) (winner string, ok bool) {
	counts := make(map[string]int, len(labels))
	for _, label := range labels {
		counts[label]++
	}

	best := -1
	for label, count := range counts {
		if count > best || (count == best && label < winner) {
			winner = label
			best = count
		}
	}

	return winner, best > 0
}
