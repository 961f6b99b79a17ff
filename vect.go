// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package lhcbmath

import (
	"math"
	"unsafe"

	"github.com/templexxx/cpu"
	xor "github.com/templexxx/xorsimd"
	"gonum.org/v1/gonum/floats"
)

// EnableSIMD lets Negate use XOR with SIMD instructions (AVX2) when the CPU has them.
//
// You can modify it before calling Negate.
var EnableSIMD = true

// Scale multiplies every element of dst by c.
func Scale(dst []float64, c float64) {
	floats.Scale(c, dst)
}

// Shift adds c to every element of dst.
func Shift(dst []float64, c float64) {
	floats.AddConst(c, dst)
}

// Negate flips the sign of every element of dst (NaN and zeros included).
func Negate(dst []float64) {
	if len(dst) == 0 {
		return
	}
	if EnableSIMD && cpu.X86.HasAVX2 {
		negateXOR(dst)
		return
	}
	negateBase(dst)
}

func negateBase(dst []float64) {
	for i := range dst {
		dst[i] = -dst[i]
	}
}

// signMaskNum is the number of -0 in signMask.
const signMaskNum = 4096

// signMask is -0 (only sign bit set) in native byte order.
var signMask = makeSignMask()

func makeSignMask() []byte {
	m := make([]float64, signMaskNum)
	neg0 := math.Copysign(0, -1)
	for i := range m {
		m[i] = neg0
	}
	return float64sBytes(m)
}

// negateXOR flips sign bits by XOR dst's bytes with signMask,
// piece by piece (see getSplitSize).
func negateXOR(dst []float64) {
	b := float64sBytes(dst)
	size := len(b)
	splitSize := getSplitSize(size)
	start := 0
	for start < size {
		end := start + splitSize
		if end > size {
			end = size
		}
		xor.Bytes(b[start:end], b[start:end], signMask[:end-start])
		start = end
	}
}

// getSplitSize returns a multiple of 8 (a whole float64),
// not bigger than signMask or half of L1 Data Cache.
func getSplitSize(n int) int {
	l1d := cpu.X86.Cache.L1D
	if l1d <= 0 { // Cannot detect cache size(-1) or CPU is not X86(0).
		l1d = 32 * 1024
	}
	s := l1d / 2
	if s > len(signMask) {
		s = len(signMask)
	}
	if n < s {
		return n
	}
	return (s >> 3) << 3
}

func float64sBytes(s []float64) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*8)
}
