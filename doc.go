// Package divsearch searches divider/multiplier pairs for a clock generator.
//
// # Overview
//
// The device derives its output from a fixed 40 MHz reference:
//
//	f = FRef × n / r
//
// with r in [1, 16383] and n in [192, 524287]. Only these (r, n)
// combinations are realizable, so an arbitrary target has to be
// approximated.
//
// # Best Match
//
// BestMatch returns the single pair whose ratio n/r is closest to
// freq/FRef:
//
//	p, err := divsearch.BestMatch(1.21477e9)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.R, p.N, p.Frequency())
//
// The error is measured in the coefficient domain, |freq/FRef − n/r|, and
// every r is tried. n is not clamped to the N range.
//
// # Window Enumeration
//
// Enumerate lists every distinct realizable frequency near the target. It
// starts with a ±1 Hz window and doubles it until at least 10 frequencies
// fall inside:
//
//	w, err := divsearch.Enumerate(1.54215e9)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range w.Solutions {
//	    fmt.Printf("%f (delta=%f) r=%d n=%d\n", s.Frequency, s.Delta, s.R, s.N)
//	}
//
// Here the error is the signed difference in Hz. Frequencies are compared
// with exact float64 equality; when several pairs produce the same value,
// the one with the lowest r is kept.
//
// Windows are rebuilt from scratch on each doubling. The number of doublings
// is capped by WindowConfig.MaxPasses (64 by default; 0 removes the cap).
//
// # Preconditions
//
// Targets must lie in [1e9, 2e9]. Anything else, NaN included, returns an
// error wrapping ErrTargetOutOfRange. MustBestMatch and MustEnumerate panic
// instead, for callers that treat a bad target as fatal.
//
// # Testing
//
// AssertBestMatch and AssertWindow check results against an independent
// recomputation:
//
//	func TestTuning(t *testing.T) {
//	    p := divsearch.MustBestMatch(freq)
//	    divsearch.AssertBestMatch(t, freq, p)
//
//	    w := divsearch.MustEnumerate(freq)
//	    divsearch.AssertWindow(t, w, divsearch.DefaultWindowConfig())
//	}
package divsearch
