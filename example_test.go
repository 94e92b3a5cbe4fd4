package divsearch_test

import (
	"fmt"

	"github.com/alexshd/divsearch"
)

func ExampleBestMatch() {
	p, err := divsearch.BestMatch(1.54215e9)
	if err != nil {
		panic(err)
	}
	fmt.Println(p, p.Frequency())
	// Output: r=800 n=30843 1.54215e+09
}

func ExampleBestMatch_outOfRange() {
	_, err := divsearch.BestMatch(2.5e9)
	fmt.Println(err)
	// Output: target frequency out of range: 2.5e+09 not in [1e+09, 2e+09]
}

func ExampleEnumerate() {
	w, err := divsearch.Enumerate(1.654321e9)
	if err != nil {
		panic(err)
	}
	s, _ := w.Closest()
	fmt.Printf("%d solutions within ±%g Hz, closest %v\n", w.Len(), w.HalfWidth, s.Pair())
	// Output: 20 solutions within ±32 Hz, closest r=81 n=3350
}
