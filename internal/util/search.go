// Package util contains internal helpers (boundary search, prefix sums).
//revive:disable:var-naming  // allow 'util' as an internal helpers package name
package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// UpperBound returns the smallest index i with xs[i] > v, assuming xs is
// sorted in non-decreasing order. Equivalently: the position where v would
// be inserted after all equal elements, and the count of elements <= v.
// Returns len(xs) when every element is <= v, and 0 when xs is empty.
func UpperBound[E constraints.Ordered](xs []E, v E) int {
	return sort.Search(len(xs), func(i int) bool { return xs[i] > v })
}
