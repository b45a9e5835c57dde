package util

import "golang.org/x/exp/constraints"

// PrefixSums returns a slice p of the same length as xs where
// p[i] = xs[0] + … + xs[i], accumulated in uint64.
// Callers must ensure xs holds no negative values; the uint64 widening
// of a negative element would silently corrupt every later prefix.
func PrefixSums[E constraints.Integer](xs []E) []uint64 {
	if len(xs) == 0 {
		return nil
	}
	p := make([]uint64, len(xs))
	var acc uint64
	for i, x := range xs {
		acc += uint64(x)
		p[i] = acc
	}
	return p
}

// IsSorted reports whether xs is non-decreasing.
func IsSorted[E constraints.Ordered](xs []E) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return false
		}
	}
	return true
}
