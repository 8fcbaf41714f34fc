package evaluate

import "sort"

// DefaultTopK is the number of ranked candidates kept per sample
const DefaultTopK = 15

// Rank returns the indices of the k highest scoring angle bins in
// descending score order.  Equal scores resolve to the lower bin first so
// rankings are deterministic across runs.
func Rank(scores ScoreVector, k int) []int {

	idx := make([]int, len(scores))

	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	if k <= 0 || k > len(idx) {
		k = len(idx)
	}

	return idx[:k]
}

// RankAll ranks a batch of score vectors, truncating each to the k best
// candidates
func RankAll(samples []ScoreVector, k int) [][]int {

	ranked := make([][]int, len(samples))

	for i, scores := range samples {
		ranked[i] = Rank(scores, k)
	}

	return ranked
}
