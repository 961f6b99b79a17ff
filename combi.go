// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package lhcbmath

import (
	"errors"
	"math"
	"math/bits"

	"gonum.org/v1/gonum/stat/combin"
)

// MaxExactChooseN is the largest n for which C(n, k) fits in uint64 for every k.
// C(67, 33) = 14226520737620288370, C(68, 34) overflows.
const MaxExactChooseN = 67

var ErrChooseOverflow = errors.New("combination: result overflows uint64")

// Choose returns the binomial coefficient C(n, k) exactly.
//
// C(n, k) is 0 when k > n.
// Every k is safe for n <= MaxExactChooseN; above that the caller must bound
// the result. A result which doesn't fit in uint64 saturates to
// math.MaxUint64, it never wraps around. Use ChooseChecked to get an error
// instead, or ChooseDouble / LogChoose for large n.
func Choose(n, k uint16) uint64 {
	r, _ := chooseExact(n, k)
	return r
}

// ChooseChecked is Choose, but returns ErrChooseOverflow
// (with math.MaxUint64) when C(n, k) doesn't fit in uint64.
func ChooseChecked(n, k uint16) (uint64, error) {
	return chooseExact(n, k)
}

func chooseExact(n, k uint16) (uint64, error) {
	if k > n {
		return 0, nil
	}
	j := minK(n, k)

	// r = r * (n-i) / (i+1) keeps r == C(n, i+1) at every step,
	// so each division is exact. The product is held in 128 bits;
	// C(n, i) is increasing for i <= n/2, so when the quotient fits
	// every earlier one did too.
	var r uint64 = 1
	for i := uint64(0); i < uint64(j); i++ {
		hi, lo := bits.Mul64(r, uint64(n)-i)
		d := i + 1
		if hi >= d {
			return math.MaxUint64, ErrChooseOverflow
		}
		r, _ = bits.Div64(hi, lo, d)
	}
	return r, nil
}

// ChooseDouble returns C(n, k) as a float64.
// It uses the same recurrence as Choose, so it reaches far beyond
// MaxExactChooseN at the cost of rounding error.
//
// Special cases are:
//
//	ChooseDouble(n, 0) = 1
//	ChooseDouble(n, k) = 0 for k > n
//	ChooseDouble(n, k) = +Inf when the value is beyond math.MaxFloat64
func ChooseDouble(n, k uint16) float64 {
	if k > n {
		return 0
	}
	if k == 0 {
		return 1
	}
	j := minK(n, k)
	nf := float64(n)
	r := 1.0
	for i := 0; i < int(j); i++ {
		r = mulDiv(r, nf-float64(i), float64(i+1))
	}
	return r
}

// GenChoose returns the generalized binomial coefficient
//
//	C(a, k) = a (a-1) ... (a-k+1) / k!
//
// for any real a. GenChoose(a, 0) is 1 for every a.
// For a non-negative integer a < k one factor is 0, so the result is 0.
// There is no symmetry to use for real a, so the running product passes
// through C(a, a/2) when k > a/2, and it is +-Inf if that one is.
func GenChoose(a float64, k uint16) float64 {
	if k == 0 {
		return 1
	}
	r := 1.0
	for i := 0; i < int(k); i++ {
		r = mulDiv(r, a-float64(i), float64(i+1))
	}
	return r
}

// mulDiv returns r * f / d, dividing first when r * f alone would overflow,
// so the result is only +-Inf when it's beyond math.MaxFloat64.
func mulDiv(r, f, d float64) float64 {
	if math.Abs(r) > math.MaxFloat64/math.Abs(f) {
		return r / d * f
	}
	return r * f / d
}

// ChooseHalf returns C(n/2, k) where n is twice the upper parameter.
// It lets callers reach half-integer coefficients like C(m+1/2, k)
// without passing floats: ChooseHalf(2*m+1, k) == GenChoose(m+0.5, k),
// and ChooseHalf(2*m, k) equals ChooseDouble(m, k) up to rounding.
func ChooseHalf(n int, k uint16) float64 {
	return GenChoose(float64(n)/2, k)
}

// LogChoose returns the natural logarithm of C(n, k):
//
//	lgamma(n+1) - lgamma(k+1) - lgamma(n-k+1)
//
// It stays finite when ChooseDouble overflows.
// For k > n, C(n, k) is 0 and LogChoose returns -Inf.
func LogChoose(n, k uint16) float64 {
	if k > n {
		return math.Inf(-1)
	}
	return combin.LogGeneralizedBinomial(float64(n), float64(k))
}

// minK returns min(k, n-k), k must be <= n.
func minK(n, k uint16) uint16 {
	if n-k < k {
		return n - k
	}
	return k
}
