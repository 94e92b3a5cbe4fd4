package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alexshd/divsearch"
)

// hz formats f in plain decimal with the fewest digits that round-trip.
func hz(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// writeBestMatch prints "<target> -> r=<r>  n=<n> -> <realized> (delta=<Hz>)".
func writeBestMatch(w io.Writer, freq float64, p divsearch.Pair) {
	realized := p.Frequency()
	fmt.Fprintf(w, "%s -> r=%d  n=%d -> %s (delta=%s)\n",
		hz(freq), p.R, p.N, hz(realized), hz(realized-freq))
}

// writeWindow prints the solution count followed by one line per solution.
func writeWindow(w io.Writer, win divsearch.Window) {
	fmt.Fprintf(w, "\ncnt: %d\n", win.Len())
	for _, s := range win.Solutions {
		fmt.Fprintf(w, "%s: (delta=%s)  r=%d  n=%d\n", hz(s.Frequency), hz(s.Delta), s.R, s.N)
	}
}
