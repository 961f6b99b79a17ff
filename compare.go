// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package lhcbmath

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats/scalar"
)

// Parameters for numerical calculations.
const (
	HiTolerance    = 1e-40
	LowTolerance   = 1e-20
	LooseTolerance = 1e-5

	Sqrt12    = 3.4641016151377546 // sqrt(12)
	InvSqrt12 = 0.2886751345948129 // 1/sqrt(12)
)

// ULP tolerances for Lomont compare.
const (
	// ULPsFloat is about 6e-6 relative tolerance for float32 values above 1e-37.
	ULPsFloat = 100
	// ULPsFloatLow is about 6e-5 relative tolerance for float32 values above 1e-37.
	ULPsFloatLow = 1000
	// ULPsDouble is about 6e-13 relative tolerance for float64 values above 1e-304.
	ULPsDouble = 1000
)

// LomontCompareDouble reports whether a and b are within ulps units
// in the last place of each other.
func LomontCompareDouble(a, b float64, ulps uint) bool {
	return scalar.EqualWithinULP(a, b, ulps)
}

// LomontCompareFloat is LomontCompareDouble for float32.
func LomontCompareFloat(a, b float32, ulps uint32) bool {
	if a == b {
		return true
	}
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return false
	}
	d := lexico32(a) - lexico32(b)
	if d < 0 {
		d = -d
	}
	return d <= int64(ulps)
}

// lexico32 maps float32 bits onto a line where adjacent floats
// differ by 1 and -0 == +0.
func lexico32(f float32) int64 {
	i := int64(int32(math.Float32bits(f)))
	if i < 0 {
		i = math.MinInt32 - i
	}
	return i
}

// KnuthEqualToDouble compares a and b with relative precision eps,
// scaled by the binary exponent of the larger magnitude
// (D.E.Knuth, "Seminumerical Algorithms", section 4.2.2).
func KnuthEqualToDouble(a, b, eps float64) bool {
	if a == b {
		return true
	}
	m := a
	if math.Abs(b) > math.Abs(a) {
		m = b
	}
	_, exp := math.Frexp(m)
	delta := math.Ldexp(eps, exp)
	d := a - b
	return -delta <= d && d <= delta
}

// EqualTo compares floating values within ULPs units in the last place.
// The zero value uses ULPsDouble for float64 and ULPsFloat for float32;
// types defined over float32 are compared as float64.
type EqualTo[T constraints.Float] struct {
	ULPs uint
}

// Eq reports whether a and b are equal within e.ULPs.
func (e EqualTo[T]) Eq(a, b T) bool {
	if a == b {
		return true
	}
	u := e.ULPs
	switch any(a).(type) {
	case float32:
		if u == 0 {
			u = ULPsFloat
		}
		return LomontCompareFloat(float32(a), float32(b), uint32(u))
	}
	if u == 0 {
		u = ULPsDouble
	}
	return LomontCompareDouble(float64(a), float64(b), u)
}

// Equal reports whether a and b are equal with the default tolerance.
func Equal[T constraints.Float](a, b T) bool {
	return EqualTo[T]{}.Eq(a, b)
}

// IsZero reports whether v is (effectively) zero.
func IsZero[T constraints.Float](v T) bool {
	return v == 0 || Equal(v, 0)
}

// NotZero is !IsZero.
func NotZero[T constraints.Float](v T) bool {
	return !IsZero(v)
}

// AllZero reports whether s is empty or every element is zero.
func AllZero[T constraints.Float](s []T) bool {
	for _, v := range s {
		if NotZero(v) {
			return false
		}
	}
	return true
}

// Small is a predicate: is the value sufficiently small?
type Small[T constraints.Float] struct {
	a T
}

// NewSmall returns a Small with threshold |a|.
func NewSmall[T constraints.Float](a T) Small[T] {
	return Small[T]{a: abs(a)}
}

// Is reports whether |v| <= threshold.
func (s Small[T]) Is(v T) bool {
	return abs(v) <= s.a
}

// AbsLess compares by absolute value.
func AbsLess[T constraints.Float](a, b T) bool { return abs(a) < abs(b) }

// AbsGreater compares by absolute value.
func AbsGreater[T constraints.Float](a, b T) bool { return abs(a) > abs(b) }

// AbsMin returns min(|a|, |b|).
func AbsMin[T constraints.Float](a, b T) T {
	a, b = abs(a), abs(b)
	if b < a {
		return b
	}
	return a
}

// AbsMax returns max(|a|, |b|).
func AbsMax[T constraints.Float](a, b T) T {
	a, b = abs(a), abs(b)
	if b > a {
		return b
	}
	return a
}

func abs[T constraints.Float](v T) T {
	return T(math.Abs(float64(v)))
}

// EqualToInt reports whether x equals i within ULPsDouble.
func EqualToInt(x float64, i int64) bool {
	return LomontCompareDouble(x, float64(i), ULPsDouble)
}

// IsLong reports whether x is (within ULPsDouble) an int64 value,
// and returns that value.
func IsLong(x float64) (int64, bool) {
	if !(x >= math.MinInt64 && x < math.MaxInt64) {
		return 0, false
	}
	l := Round(x)
	return l, EqualToInt(x, l)
}

// IsInt is IsLong within the range of int32.
func IsInt(x float64) (int32, bool) {
	if !(x >= math.MinInt32 && x <= math.MaxInt32) {
		return 0, false
	}
	l, ok := IsLong(x)
	return int32(l), ok
}
