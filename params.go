package divsearch

import (
	"errors"
	"fmt"
)

// Device parameter space.
//
// A realizable output frequency is FRef × n / r with r in [RMin, RMax] and
// n in [NMin, NMax]. KMin and KMax bound the n/r ratio used by the coprime
// count; the searches derive their ratio from the target instead.
const (
	RMin = 1
	RMax = 16383
	NMin = 192
	NMax = 524287
	KMin = 25
	KMax = 50

	FRef = 40_000_000 // reference clock, Hz
)

// Accepted target frequency domain, Hz.
const (
	FreqMin = 1e9
	FreqMax = 2e9
)

// Common errors returned by functions in this package.
var (
	ErrTargetOutOfRange = errors.New("target frequency out of range")
	ErrWindowExhausted  = errors.New("window pass limit reached")
)

// Pair is a divider/multiplier pair.
type Pair struct {
	R int // divider
	N int // multiplier
}

// Frequency returns FRef × n / r.
//
// The product is formed before the division so the result is bit-identical
// to what the window enumeration stores for the same pair.
func (p Pair) Frequency() float64 {
	return float64(FRef) * float64(p.N) / float64(p.R)
}

// String returns "r=<r> n=<n>".
func (p Pair) String() string {
	return fmt.Sprintf("r=%d n=%d", p.R, p.N)
}

// CheckTarget reports whether freq lies in [FreqMin, FreqMax].
// NaN is rejected.
func CheckTarget(freq float64) error {
	if !(freq >= FreqMin && freq <= FreqMax) {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrTargetOutOfRange, freq, FreqMin, FreqMax)
	}
	return nil
}

// ClampN clamps n to [NMin, NMax].
func ClampN(n int) int {
	return min(NMax, max(NMin, n))
}

// GCD returns the greatest common divisor of a and b, with GCD(a, 0) == a.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Coprime returns true if a and b share no factor other than 1.
func Coprime(a, b int) bool {
	return GCD(a, b) == 1
}
