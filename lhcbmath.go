// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package lhcbmath implements math helpers for physics data processing:
// binomial coefficients (exact, float64, generalized, half-integer & log),
// floating point comparison (Lomont/ULPs & Knuth),
// rounding to significant digits and in-place vector operations.
//
// All functions are pure and safe for concurrent use,
// except that EnableSIMD must be set before calling Negate.
package lhcbmath
