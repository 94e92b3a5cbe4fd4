package divsearch

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"testing"
)

// TestClampN verifies n is held inside [NMin, NMax].
func TestClampN(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-1, NMin},
		{0, NMin},
		{25, NMin},
		{NMin - 1, NMin},
		{NMin, NMin},
		{NMin + 1, NMin + 1},
		{300_000, 300_000},
		{NMax - 1, NMax - 1},
		{NMax, NMax},
		{NMax + 1, NMax},
		{RMax * KMax, NMax},
	}
	for _, c := range cases {
		if got := ClampN(c.in); got != c.want {
			t.Errorf("ClampN(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

// TestGCD checks Euclid against known values in both argument orders.
func TestGCD(t *testing.T) {
	cases := []struct {
		A, B, D int
	}{
		{1, 1, 1},
		{2, 4, 2},
		{6, 9, 3},
		{7, 360, 1},
		{192, 4, 4},
		{193, 4, 1},
		{3600, 216000, 3600},
		{30843, 800, 1},
		{123456789, 987654321, 9},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("GCD(%d,%d)", c.A, c.B), func(t *testing.T) {
			if d := GCD(c.A, c.B); d != c.D {
				t.Errorf("GCD(%d, %d) = %d, want %d", c.A, c.B, d, c.D)
			}
			if d := GCD(c.B, c.A); d != c.D {
				t.Errorf("GCD(%d, %d) = %d, want %d", c.B, c.A, d, c.D)
			}
		})
	}
}

// TestGCD_Zero verifies GCD(a, 0) == a.
func TestGCD_Zero(t *testing.T) {
	for _, a := range []int{0, 1, 7, 192, NMax} {
		if d := GCD(a, 0); d != a {
			t.Errorf("GCD(%d, 0) = %d, want %d", a, d, a)
		}
	}
}

func TestCoprime(t *testing.T) {
	if !Coprime(193, 4) {
		t.Error("193 and 4 should be coprime")
	}
	if Coprime(192, 4) {
		t.Error("192 and 4 share a factor")
	}
	if !Coprime(NMin, 1) {
		t.Error("everything is coprime with 1")
	}
}

// TestCheckTarget verifies the domain edges are accepted and nothing else.
func TestCheckTarget(t *testing.T) {
	accept := []float64{FreqMin, FreqMax, 1.21477e9, 1.5e9}
	for _, f := range accept {
		if err := CheckTarget(f); err != nil {
			t.Errorf("CheckTarget(%g) = %v, want nil", f, err)
		}
	}

	reject := []float64{
		0,
		-1.5e9,
		math.Nextafter(FreqMin, 0),
		math.Nextafter(FreqMax, math.Inf(1)),
		2.5e9,
		math.Inf(1),
		math.Inf(-1),
		math.NaN(),
	}
	for _, f := range reject {
		err := CheckTarget(f)
		if !errors.Is(err, ErrTargetOutOfRange) {
			t.Errorf("CheckTarget(%g) = %v, want ErrTargetOutOfRange", f, err)
		}
	}
}

// TestPair_Frequency compares the float64 result with exact rational
// arithmetic. FRef×n fits in 53 bits, so the only rounding is the division
// and the result must be the correctly rounded value.
func TestPair_Frequency(t *testing.T) {
	pairs := []Pair{
		{1, NMin},
		{1, 25},
		{1, 50},
		{800, 30843},
		{4000, 121477},
		{3, 100},
		{7, 255},
		{RMax, NMax},
		{RMax, NMin},
		{10485, NMax},
	}
	for _, p := range pairs {
		t.Run(p.String(), func(t *testing.T) {
			exact := new(big.Rat).SetFrac64(int64(FRef)*int64(p.N), int64(p.R))
			want, _ := exact.Float64()
			if got := p.Frequency(); got != want {
				t.Errorf("%v: got %.6f, want %.6f", p, got, want)
			}
		})
	}
}
