package divsearch

import (
	"math"
	"testing"
)

// AssertBestMatch verifies that p is the exhaustive best match for freq.
//
// The sweep is recomputed from scratch. The assertion fails if any r gives
// a strictly smaller coefficient delta, or the same delta at a lower r.
func AssertBestMatch(t *testing.T, freq float64, p Pair) {
	t.Helper()

	if p.R < RMin || p.R > RMax {
		t.Fatalf("r out of range: %d not in [%d, %d]", p.R, RMin, RMax)
	}

	got := CoefficientDelta(freq, p)
	k := freq / FRef

	for r := RMin; r <= RMax; r++ {
		rf := float64(r)
		n := math.Round(rf * k)
		delta := math.Abs(k - n/rf)
		if delta < got {
			t.Errorf("r=%d n=%.0f beats %v: delta %.3e < %.3e", r, n, p, delta, got)
			return
		}
		if delta == got && r < p.R {
			t.Errorf("r=%d n=%.0f ties %v at delta %.3e with a lower r", r, n, p, delta)
			return
		}
	}

	t.Logf("✓ best match %g: %v, delta %.3e", freq, p, got)
}

// AssertWindow verifies the structural properties of an enumeration result.
//
// Checked: at least cfg.MinSolutions entries, every frequency inside
// [Target−HalfWidth, Target+HalfWidth], strictly ascending (and therefore
// distinct) frequencies, deltas equal to Frequency − Target, frequencies
// reproducible from (R, N), and R, N within their ranges.
func AssertWindow(t *testing.T, w Window, cfg WindowConfig) {
	t.Helper()

	if w.Len() < cfg.MinSolutions {
		t.Fatalf("too few solutions: %d (min: %d)", w.Len(), cfg.MinSolutions)
	}

	// allow for the rounding in k0/k1 and in the frequency itself
	eps := w.Target * 1e-12
	lo := w.Target - w.HalfWidth - eps
	hi := w.Target + w.HalfWidth + eps

	for i, s := range w.Solutions {
		if s.R < RMin || s.R > RMax {
			t.Errorf("solution %d: r=%d out of range", i, s.R)
		}
		if s.N < NMin || s.N > NMax {
			t.Errorf("solution %d: n=%d out of range", i, s.N)
		}
		if s.Frequency < lo || s.Frequency > hi {
			t.Errorf("solution %d: %f outside [%f, %f]", i, s.Frequency, lo, hi)
		}
		if f := s.Pair().Frequency(); f != s.Frequency {
			t.Errorf("solution %d: %v gives %f, reported %f", i, s.Pair(), f, s.Frequency)
		}
		if d := s.Frequency - w.Target; d != s.Delta {
			t.Errorf("solution %d: delta %g, want %g", i, s.Delta, d)
		}
		if i > 0 && !(w.Solutions[i-1].Frequency < s.Frequency) {
			t.Errorf("solution %d: %f not above previous %f", i, s.Frequency, w.Solutions[i-1].Frequency)
		}
	}

	t.Logf("✓ window %g: %d solutions, ±%g Hz after %d passes",
		w.Target, w.Len(), w.HalfWidth, w.Passes)
}
