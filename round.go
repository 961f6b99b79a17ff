// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package lhcbmath

import (
	"math"
	"strconv"
	"strings"
)

// Round returns the nearest integer, rounding half away from zero.
// NaN gives 0; values beyond int64 saturate.
func Round(x float64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt64:
		return math.MaxInt64
	case x <= math.MinInt64:
		return math.MinInt64
	}
	return int64(math.Round(x))
}

// RoundN rounds x to n significant decimal digits,
// half away from zero on the shortest decimal representation of x,
// so RoundN(1234.5, 4) is 1235 and RoundN(1e308, 1) is 1e308.
//
// Special cases are:
//
//	RoundN(x, 0) = 0
//	RoundN(±0, n) = 0
//	RoundN(±Inf, n) = ±Inf
//	RoundN(NaN, n) = NaN
//	RoundN(x, n) = ±Inf when rounding up passes math.MaxFloat64
func RoundN(x float64, n uint16) float64 {
	if n == 0 || x == 0 {
		return 0
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	d, e := decimal(x)
	if int(n) >= len(d) {
		return x
	}
	b := []byte(d[:n])
	if d[n] >= '5' {
		i := len(b) - 1
		for ; i >= 0 && b[i] == '9'; i-- {
			b[i] = '0'
		}
		if i < 0 { // 99.. -> 100..
			b = append([]byte{'1'}, b[:len(b)-1]...)
			e++
		} else {
			b[i]++
		}
	}
	r, _ := strconv.ParseFloat("0."+string(b)+"e"+strconv.Itoa(e), 64)
	return math.Copysign(r, x)
}

// Frexp10 breaks x into a decimal mantissa and exponent:
// x == mant * 10^exp with 0.1 <= |mant| < 1.
//
// Special cases are:
//
//	Frexp10(±0) = ±0, 0
//	Frexp10(±Inf) = ±Inf, 0
//	Frexp10(NaN) = NaN, 0
func Frexp10(x float64) (mant float64, exp int) {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x, 0
	}
	d, e := decimal(x)
	mant, _ = strconv.ParseFloat("0."+d, 64)
	if mant >= 1 { // 17 nines round up to 1
		mant = math.Nextafter(1, 0)
	}
	return math.Copysign(mant, x), e
}

// decimal returns the significant digits of the shortest decimal
// representation of |x| and exp, with |x| == 0.digits * 10^exp.
// x must be finite and non-zero.
func decimal(x float64) (digits string, exp int) {
	s := strconv.FormatFloat(math.Abs(x), 'e', -1, 64) // d.ddde±xx
	i := strings.IndexByte(s, 'e')
	exp, _ = strconv.Atoi(s[i+1:])
	return strings.Replace(s[:i], ".", "", 1), exp + 1
}
