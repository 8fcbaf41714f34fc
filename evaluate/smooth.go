package evaluate

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SmoothMode selects the windowed statistic applied by Smooth
type SmoothMode int

const (
	// SmoothMedian replaces each bin with the median of its window.  This
	// is the default post processing applied before ranking.
	SmoothMedian SmoothMode = iota
	// SmoothSum replaces each bin with the window sum normalized by the
	// window length, preserving the vector's total mass
	SmoothSum
)

// ErrInvalidWindow is returned for a window size that is not a positive odd
// integer smaller than the vector length
var ErrInvalidWindow = errors.New("window size must be a positive odd integer smaller than the vector length")

// Smooth applies a centered window statistic over the score vector with
// circular wrap at the 0/360 boundary, so bin 359's neighbors include bin 0.
// The output has the same length as the input and the input is left
// unmodified.
func Smooth(scores ScoreVector, windowSize int, mode SmoothMode) (ScoreVector, error) {

	if windowSize <= 0 || windowSize%2 == 0 || windowSize >= len(scores) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, windowSize)
	}

	n := len(scores)
	half := windowSize / 2

	out := make(ScoreVector, n)
	window := make([]float64, windowSize)

	for i := 0; i < n; i++ {

		for j := -half; j <= half; j++ {
			window[j+half] = scores[((i+j)%n+n)%n]
		}

		switch mode {
		case SmoothSum:
			out[i] = stat.Mean(window, nil)

		default:
			sort.Float64s(window)
			out[i] = stat.Quantile(0.5, stat.Empirical, window, nil)
		}
	}

	return out, nil
}

// SmoothAll smooths a batch of score vectors with the same window
func SmoothAll(samples []ScoreVector, windowSize int, mode SmoothMode) ([]ScoreVector, error) {

	out := make([]ScoreVector, len(samples))

	for i, scores := range samples {
		smoothed, err := Smooth(scores, windowSize, mode)

		if err != nil {
			return nil, err
		}

		out[i] = smoothed
	}

	return out, nil
}
