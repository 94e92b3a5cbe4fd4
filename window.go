package divsearch

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
)

// Solution is one realizable frequency inside an enumeration window.
type Solution struct {
	Frequency float64 // FRef × N / R, Hz
	R         int
	N         int
	Delta     float64 // Frequency − target, Hz
}

// Pair returns the (R, N) pair that produced s.
func (s Solution) Pair() Pair {
	return Pair{R: s.R, N: s.N}
}

// Window is the result of an enumeration.
type Window struct {
	Target    float64    // requested frequency, Hz
	HalfWidth float64    // final half-width of [Target−HalfWidth, Target+HalfWidth]
	Passes    int        // sweeps performed, including the last one
	Solutions []Solution // ascending by Frequency, no duplicate frequencies
}

// Len returns the number of solutions.
func (w Window) Len() int {
	return len(w.Solutions)
}

// WindowConfig controls window enumeration.
type WindowConfig struct {
	MinSolutions     int          // stop once this many distinct frequencies are found
	InitialHalfWidth float64      // starting half-width, Hz; doubled on every retry
	MaxPasses        int          // sweep limit; 0 means unbounded
	Logger           *slog.Logger // per-pass debug output; nil discards
}

// DefaultWindowConfig returns the stock settings: 10 solutions, 1 Hz
// starting half-width, 64 passes.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		MinSolutions:     10,
		InitialHalfWidth: 1.0,
		MaxPasses:        64,
	}
}

// Enumerate is EnumerateWith using DefaultWindowConfig.
func Enumerate(freq float64) (Window, error) {
	return EnumerateWith(freq, DefaultWindowConfig())
}

// MustEnumerate is like Enumerate but panics on error.
func MustEnumerate(freq float64) Window {
	w, err := Enumerate(freq)
	if err != nil {
		panic(err)
	}
	return w
}

// EnumerateWith finds every distinct realizable frequency within a window
// around freq, widening the window until at least cfg.MinSolutions are found.
//
// Each pass sweeps all r in [RMin, RMax] and every n in [NMin, NMax] whose
// frequency falls inside [freq−dfreq, freq+dfreq]. When two pairs produce
// the same float64 frequency the first one seen (lowest r) is kept. If the
// pass yields fewer than cfg.MinSolutions entries, dfreq is doubled and the
// sweep restarts from an empty set.
//
// EnumerateWith returns an error wrapping ErrTargetOutOfRange if freq is out
// of range, or ErrWindowExhausted if cfg.MaxPasses sweeps did not reach
// cfg.MinSolutions.
func EnumerateWith(freq float64, cfg WindowConfig) (Window, error) {
	if err := CheckTarget(freq); err != nil {
		return Window{}, err
	}
	if cfg.InitialHalfWidth <= 0 || math.IsNaN(cfg.InitialHalfWidth) {
		return Window{}, fmt.Errorf("initial half-width must be positive, got %g", cfg.InitialHalfWidth)
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	dfreq := cfg.InitialHalfWidth
	for pass := 1; ; pass++ {
		set := sweepWindow(freq, dfreq)

		log.Debug("window pass",
			"target", freq,
			"pass", pass,
			"half_width", dfreq,
			"solutions", len(set))

		if len(set) >= cfg.MinSolutions {
			return Window{
				Target:    freq,
				HalfWidth: dfreq,
				Passes:    pass,
				Solutions: set.sorted(freq),
			}, nil
		}

		if cfg.MaxPasses > 0 && pass >= cfg.MaxPasses {
			return Window{}, fmt.Errorf("%w: %d passes, half-width %g Hz, %d of %d solutions",
				ErrWindowExhausted, pass, dfreq, len(set), cfg.MinSolutions)
		}

		dfreq *= 2
	}
}

// solutionSet maps a realizable frequency to the first pair producing it.
type solutionSet map[float64]Pair

// sweepWindow builds the solution set for [freq−dfreq, freq+dfreq].
func sweepWindow(freq, dfreq float64) solutionSet {
	k0 := (freq - dfreq) / FRef
	k1 := (freq + dfreq) / FRef

	set := make(solutionSet)
	for r := RMin; r <= RMax; r++ {
		rf := float64(r)
		n0 := max(NMin, int(math.Ceil(rf*k0)))
		n1 := min(NMax, int(math.Floor(rf*k1)))
		for n := n0; n <= n1; n++ {
			p := Pair{R: r, N: n}
			f := p.Frequency()
			if _, ok := set[f]; !ok {
				set[f] = p
			}
		}
	}
	return set
}

// sorted returns the set as solutions ascending by frequency.
func (s solutionSet) sorted(target float64) []Solution {
	out := make([]Solution, 0, len(s))
	for f, p := range s {
		out = append(out, Solution{
			Frequency: f,
			R:         p.R,
			N:         p.N,
			Delta:     f - target,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Frequency < out[j].Frequency
	})
	return out
}

// Closest returns the solution with the smallest |Delta|.
// The second result is false if w is empty.
func (w Window) Closest() (Solution, bool) {
	if len(w.Solutions) == 0 {
		return Solution{}, false
	}
	best := w.Solutions[0]
	for _, s := range w.Solutions[1:] {
		if math.Abs(s.Delta) < math.Abs(best.Delta) {
			best = s
		}
	}
	return best, true
}
