package divsearch

import "math"

// unreachable delta; k is in [25, 50] so any real delta is far below 1
const bestMatchSentinel = 1000.0

// BestMatch finds the pair whose ratio n/r is closest to freq/FRef.
//
// Every r in [RMin, RMax] is tried with n = round(r × k). The error is
// measured in the coefficient domain, |k − n/r|, not in Hz. Ties keep the
// lowest r. The sweep is exhaustive; there is no pruning.
//
// The returned n is not clamped to [NMin, NMax]. For targets near the
// domain edges with a large r it can exceed NMax.
//
// BestMatch returns an error wrapping ErrTargetOutOfRange if freq is outside
// [FreqMin, FreqMax].
func BestMatch(freq float64) (Pair, error) {
	if err := CheckTarget(freq); err != nil {
		return Pair{}, err
	}

	k := freq / FRef
	best := Pair{}
	bestDelta := bestMatchSentinel

	for r := RMin; r <= RMax; r++ {
		rf := float64(r)
		n := math.Round(rf * k)
		delta := math.Abs(k - n/rf)
		if delta < bestDelta {
			bestDelta = delta
			best = Pair{R: r, N: int(n)}
		}
	}

	return best, nil
}

// MustBestMatch is like BestMatch but panics if freq is out of range.
func MustBestMatch(freq float64) Pair {
	p, err := BestMatch(freq)
	if err != nil {
		panic(err)
	}
	return p
}

// CoefficientDelta returns |freq/FRef − n/r|, the error BestMatch minimizes.
func CoefficientDelta(freq float64, p Pair) float64 {
	rf := float64(p.R)
	return math.Abs(freq/FRef - float64(p.N)/rf)
}
