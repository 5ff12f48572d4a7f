package stats

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Basic statistical primitives shared by the feature extractors, using gonum
// for the moment computations.

// Mean calculates the arithmetic mean of a slice using gonum.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// SampleVariance calculates the sample (n-1) variance of a slice using gonum.
func SampleVariance(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return stat.Variance(data, nil)
}

// ShannonEntropy computes the base-2 Shannon entropy of the frequency
// distribution of the given values:
//
//	H = -Σ p_k · log2(p_k), p_k = count_k / total
//
// Only observed categories are summed, so log2(0) is never evaluated and no
// smoothing is applied. An empty input has zero entropy.
func ShannonEntropy[T comparable](values []T) float64 {
	if len(values) == 0 {
		return 0.0
	}

	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	total := float64(len(values))
	entropy := 0.0
	for _, count := range counts {
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}

	return entropy
}

// NgramRepetition measures how repetitive a token sequence is: it slides a
// window of n tokens over the sequence and returns
//
//	1 - distinct windows / total windows
//
// so 0 means every window is unique and values approach 1 for highly
// repetitive sequences. Sequences shorter than n score 0.
func NgramRepetition(tokens []string, n int) float64 {
	if n <= 0 || len(tokens) < n {
		return 0.0
	}

	total := len(tokens) - n + 1
	distinct := make(map[string]struct{}, total)
	for i := 0; i < total; i++ {
		distinct[strings.Join(tokens[i:i+n], " ")] = struct{}{}
	}

	return 1.0 - float64(len(distinct))/float64(total)
}

// FloatToken renders a float as a stable map/window token. The shortest
// round-trippable form keeps distinct values distinct.
func FloatToken(v float64) string {
	return fmt.Sprintf("%g", v)
}
