package segmentation

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInsufficientDistinct reports that a score dimension has too few
// distinct values to cut into the requested number of quantile bins. There
// is deliberately no fallback to coarser binning.
var ErrInsufficientDistinct = errors.New("insufficient distinct values for quantile scoring")

// quantileCut bins values into len(labels) quantile intervals and returns
// the label of each value's bin. Bin edges are the linearly interpolated
// quantiles of the data; intervals are left-open except the first, which
// includes the minimum. Duplicate edges fail with ErrInsufficientDistinct.
func quantileCut(values []float64, labels []int) ([]int, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("quantile cut of empty input: %w", ErrInsufficientDistinct)
	}

	bins := len(labels)
	edges := make([]float64, bins+1)
	for i := 0; i <= bins; i++ {
		edges[i] = quantile(values, float64(i)/float64(bins))
	}
	for i := 0; i < bins; i++ {
		if !(edges[i+1] > edges[i]) {
			return nil, fmt.Errorf("%d distinct bin edges for %d bins: %w", countDistinct(edges), bins, ErrInsufficientDistinct)
		}
	}

	out := make([]int, len(values))
	for i, v := range values {
		// Find the first edge the value does not exceed. The minimum lands
		// in the first bin even though that interval is nominally open.
		bin := sort.SearchFloat64s(edges[1:], v)
		if bin >= bins {
			bin = bins - 1
		}
		out[i] = labels[bin]
	}
	return out, nil
}

// quantile computes the p-quantile of values with linear interpolation
// between order statistics.
func quantile(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[lo+1]*frac
}

// rankFirst assigns ranks 1..n by ascending value, breaking ties by
// first-occurrence order. Ranking before a quantile cut forces exactly even
// bucket sizes regardless of ties in the underlying values.
func rankFirst(values []float64) []float64 {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	ranks := make([]float64, len(values))
	for pos, i := range idx {
		ranks[i] = float64(pos + 1)
	}
	return ranks
}

func countDistinct(values []float64) int {
	seen := make(map[float64]bool, len(values))
	for _, v := range values {
		seen[v] = true
	}
	return len(seen)
}
