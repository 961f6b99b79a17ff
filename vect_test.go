// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package lhcbmath

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/templexxx/cpu"
)

func fillRandomFloats(s []float64) {
	for i := range s {
		s[i] = (rand.Float64() - 0.5) * math.Pow10(rand.Intn(40)-20)
	}
}

func TestScaleShift(t *testing.T) {
	s := []float64{1, -2, 0.5, 0}
	Scale(s, 2)
	for i, exp := range []float64{2, -4, 1, 0} {
		if s[i] != exp {
			t.Fatalf("scale mismatched at %d: exp: %g, got: %g", i, exp, s[i])
		}
	}
	Shift(s, -1)
	for i, exp := range []float64{1, -5, 0, -1} {
		if s[i] != exp {
			t.Fatalf("shift mismatched at %d: exp: %g, got: %g", i, exp, s[i])
		}
	}
	Scale(nil, 3)
	Shift(nil, 3)
}

func TestNegate(t *testing.T) {
	s := []float64{1, -2, 0, math.Copysign(0, -1), math.Inf(1), math.MaxFloat64}
	Negate(s)
	exp := []float64{-1, 2, math.Copysign(0, -1), 0, math.Inf(-1), -math.MaxFloat64}
	for i := range exp {
		if math.Float64bits(s[i]) != math.Float64bits(exp[i]) {
			t.Fatalf("negate mismatched at %d: exp: %g, got: %g", i, exp[i], s[i])
		}
	}
	Negate(nil)
}

// XOR path must match the basic one bit for bit,
// including sizes which aren't multiples of split size.
func TestNegate_XOR(t *testing.T) {
	if !cpu.X86.HasAVX2 {
		t.Skip("no AVX2")
	}

	rand.Seed(time.Now().UnixNano())

	for _, n := range []int{1, 2, 3, 15, 16, 17, 255, 1024, signMaskNum - 1, signMaskNum, signMaskNum + 1, 3*signMaskNum + 7} {
		exp := make([]float64, n)
		fillRandomFloats(exp)
		act := make([]float64, n)
		copy(act, exp)

		negateBase(exp)
		negateXOR(act)
		for i := range exp {
			if math.Float64bits(exp[i]) != math.Float64bits(act[i]) {
				t.Fatalf("XOR mismatched with base, size: %d, index: %d", n, i)
			}
		}
	}
}

func TestGetSplitSize(t *testing.T) {
	for _, n := range []int{8, 16, 1024, 8 * signMaskNum, 64 * signMaskNum} {
		s := getSplitSize(n)
		if s <= 0 || s%8 != 0 || s > len(signMask) || s > n {
			t.Fatalf("illegal split size: %d for: %d", s, n)
		}
	}
}

func TestEnableSIMD(t *testing.T) {
	defer func(old bool) { EnableSIMD = old }(EnableSIMD)

	exp := make([]float64, 1000)
	fillRandomFloats(exp)
	act := make([]float64, len(exp))
	copy(act, exp)

	EnableSIMD = false
	Negate(act)
	for i := range exp {
		if act[i] != -exp[i] {
			t.Fatalf("negate mismatched at %d", i)
		}
	}
}

func BenchmarkNegate(b *testing.B) {
	s := make([]float64, 16*1024)
	fillRandomFloats(s)
	b.SetBytes(int64(len(s) * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Negate(s)
	}
}
