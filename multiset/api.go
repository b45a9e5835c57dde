package multiset

import "golang.org/x/exp/constraints"

// Multiset is a capped multiset over an integer element type E.
// The element collection is fixed at construction; only the cap varies.
//
// Sum is O(log n) when a cap is set and O(1) otherwise. SetCap, ClearCap
// and every accessor are O(1).
type Multiset[E constraints.Integer] interface {
	// Sum returns Σ min(v, cap) over all stored values if a cap is set,
	// else the unclamped total. An empty multiset sums to 0 regardless
	// of the cap.
	Sum() uint64

	// SetCap sets the per-element cap to c. O(1); stored data is not
	// touched, only subsequent Sum results change.
	// A negative c is a programmer error and panics (unsigned element
	// types rule it out at compile time).
	SetCap(c E)

	// ClearCap removes the cap. Subsequent Sum calls return the
	// unclamped total again, exactly.
	ClearCap()

	// Cap returns the current cap and whether one is set.
	Cap() (E, bool)

	// Len returns the number of stored elements (duplicates counted).
	Len() int

	// Total returns the unclamped sum of all elements, ignoring any cap.
	Total() uint64

	// Min returns the smallest element, or ok=false if the multiset is
	// empty.
	Min() (E, bool)

	// Max returns the largest element, or ok=false if the multiset is
	// empty.
	Max() (E, bool)
}
