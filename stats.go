package divsearch

import (
	"math"
	"sort"
)

// DeltaStats summarizes |Delta| over a window's solutions, in Hz.
type DeltaStats struct {
	Mean   float64
	Stddev float64
	P50    float64
	P95    float64
	P99    float64
	Max    float64
}

// Stats computes the spread of absolute errors in w.
// An empty window yields the zero value.
func (w Window) Stats() DeltaStats {
	if len(w.Solutions) == 0 {
		return DeltaStats{}
	}

	sorted := make([]float64, len(w.Solutions))
	for i, s := range w.Solutions {
		sorted[i] = math.Abs(s.Delta)
	}
	sort.Float64s(sorted)

	var sum float64
	for _, d := range sorted {
		sum += d
	}
	mean := sum / float64(len(sorted))

	var variance float64
	for _, d := range sorted {
		diff := d - mean
		variance += diff * diff
	}
	stddev := math.Sqrt(variance / float64(len(sorted)))

	return DeltaStats{
		Mean:   mean,
		Stddev: stddev,
		P50:    sorted[len(sorted)*50/100],
		P95:    sorted[len(sorted)*95/100],
		P99:    sorted[len(sorted)*99/100],
		Max:    sorted[len(sorted)-1],
	}
}
