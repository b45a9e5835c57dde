package multiset

import "golang.org/x/exp/constraints"

// Options configures a multiset at construction. Zero values are safe;
// sane defaults are applied in New():
//   - nil Metrics => NoopMetrics
//   - nil Cap     => no cap (Sum returns the unclamped total)
type Options[E constraints.Integer] struct {
	// Cap is the initial per-element cap; nil means uncapped.
	// A negative initial cap is a programmer error and panics in New,
	// same as SetCap.
	Cap *E

	// Sorted promises that the input slice is already non-decreasing,
	// letting New skip its sort. The promise is verified in O(n); if it
	// doesn't hold, New sorts anyway (a broken promise costs time, not
	// correctness).
	Sorted bool

	// Observability
	// Metrics receives Query/CapChange/Size signals.
	Metrics Metrics
}
