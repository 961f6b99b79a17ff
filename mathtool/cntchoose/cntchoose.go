// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// This tool calculates the binomial coefficient C(n, k),
// exactly when it fits in uint64, and always as float64 & log.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/templexxx/lhcbmath"
)

var n = flag.Int("n", 20, "upper parameter; twice the upper parameter with -half")
var k = flag.Int("k", -1, "lower parameter; keep it empty if you want the "+
	"coefficient in the middle (n/2)")
var half = flag.Bool("half", false, "treat n as twice the (half-integer) upper parameter")

func init() {
	flag.Usage = func() {
		fmt.Printf("Usage of %s:\n", os.Args[0])
		fmt.Println("  cntchoose [-flags]")
		fmt.Println("  Valid flags:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	kk, err := lowerParam(*n, *k, *half)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *half {
		fmt.Printf("C(%d/2, %d) ≈ %g\n", *n, kk, lhcbmath.ChooseHalf(*n, uint16(kk)))
		return
	}

	if *n < 0 || *n > math.MaxUint16 {
		fmt.Fprintf(os.Stderr, "n out of range: %d\n", *n)
		os.Exit(2)
	}
	nn, kn := uint16(*n), uint16(kk)
	if c, err := lhcbmath.ChooseChecked(nn, kn); err == nil {
		fmt.Printf("C(%d, %d) = %d\n", nn, kn, c)
	} else {
		fmt.Printf("C(%d, %d): %s\n", nn, kn, err)
	}
	fmt.Printf("C(%d, %d) ≈ %g\n", nn, kn, lhcbmath.ChooseDouble(nn, kn))
	fmt.Printf("ln C(%d, %d) = %.6f\n", nn, kn, lhcbmath.LogChoose(nn, kn))
}

// lowerParam returns k, or the middle of n when k < 0.
func lowerParam(n, k int, half bool) (int, error) {
	if k < 0 {
		k = n / 2
		if half {
			k = n / 4
		}
	}
	if k < 0 || k > math.MaxUint16 {
		return 0, fmt.Errorf("k out of range: %d", k)
	}
	return k, nil
}
