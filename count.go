package divsearch

import "context"

// CountCoprime counts the coprime pairs (r, n) with r in [rMin, rMax] and n
// in [ClampN(r×KMin), ClampN(r×KMax)].
//
// rMin is raised to RMin and rMax lowered to RMax. An empty range counts 0.
func CountCoprime(rMin, rMax int) int {
	cnt, _ := CountCoprimeContext(context.Background(), rMin, rMax)
	return cnt
}

// CountCoprimeContext is like CountCoprime but stops early when ctx is done,
// returning the partial count and ctx.Err().
func CountCoprimeContext(ctx context.Context, rMin, rMax int) (int, error) {
	rMin = max(rMin, RMin)
	rMax = min(rMax, RMax)

	cnt := 0
	for r := rMin; r <= rMax; r++ {
		if err := ctx.Err(); err != nil {
			return cnt, err
		}
		n0 := ClampN(r * KMin)
		n1 := ClampN(r * KMax)
		for n := n0; n <= n1; n++ {
			if Coprime(n, r) {
				cnt++
			}
		}
	}
	return cnt, nil
}

// CountRealizable is CountCoprime over the whole R range.
// It performs roughly 1.5e9 GCD evaluations and takes a while.
func CountRealizable() int {
	return CountCoprime(RMin, RMax)
}
