package multiset

import (
	"errors"
	"slices"

	"github.com/IvanBrykalov/cappedsum/internal/util"
	"golang.org/x/exp/constraints"
)

// ErrNegativeValue is returned by New when the input contains a negative
// value. The multiset models non-negative counts; there is no recovery
// path — validate upstream or use an unsigned element type, which rules
// the error out entirely.
var ErrNegativeValue = errors.New("multiset: input contains a negative value")

// multiset is the sorted-values + prefix-sums layout behind Multiset.
// values and prefix are computed once in New and never mutated; the cap
// pair is the only state that changes afterwards.
type multiset[E constraints.Integer] struct {
	values []E      // sorted ascending, same multiset as the input
	prefix []uint64 // prefix[i] = values[0] + … + values[i]

	cap    E
	capped bool

	opt Options[E]
}

// New copies values, sorts the copy ascending, and builds its prefix-sum
// slice in one linear pass. O(n log n) time (the sort dominates, and is
// skipped when Options.Sorted holds), O(n) extra space.
// Defaults:
//   - nil Metrics -> NoopMetrics
//   - nil Cap     -> uncapped
//
// Returns ErrNegativeValue if any input value is negative. A negative
// initial cap in Options panics, same as SetCap.
func New[E constraints.Integer](values []E, opt Options[E]) (Multiset[E], error) {
	// default Metrics
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}

	for _, v := range values {
		if v < 0 {
			return nil, ErrNegativeValue
		}
	}

	vs := make([]E, len(values))
	copy(vs, values)
	if !opt.Sorted || !util.IsSorted(vs) {
		slices.Sort(vs)
	}

	m := &multiset[E]{
		values: vs,
		prefix: util.PrefixSums(vs),
		opt:    opt,
	}
	if opt.Cap != nil {
		if *opt.Cap < 0 {
			panic("multiset: cap must be >= 0")
		}
		m.cap, m.capped = *opt.Cap, true
	}

	opt.Metrics.Size(len(vs), m.Total())

	// return pointer-to-impl as the interface (avoids unexported-return lint)
	return m, nil
}

// ---- Multiset[E] implementation ----

// Sum returns Σ min(v, cap) over all stored values, or the unclamped
// total when no cap is set. O(1) uncapped, O(log n) capped.
func (m *multiset[E]) Sum() uint64 {
	m.opt.Metrics.Query(m.capped)

	n := len(m.values)
	if n == 0 {
		return 0
	}
	if !m.capped {
		return m.prefix[n-1]
	}

	// Boundary index: first position whose value exceeds the cap.
	// Everything below it contributes its own value (elements equal to
	// the cap included, since min(v, c) == v when v <= c); the n-k
	// elements from the boundary on contribute exactly the cap each.
	k := util.UpperBound(m.values, m.cap)
	var below uint64
	if k > 0 {
		below = m.prefix[k-1]
	}
	return below + uint64(m.cap)*uint64(n-k)
}

// SetCap stores c as the current cap in O(1). No recomputation happens;
// only subsequent Sum results are affected.
func (m *multiset[E]) SetCap(c E) {
	if c < 0 {
		panic("multiset: cap must be >= 0")
	}
	m.cap, m.capped = c, true
	m.opt.Metrics.CapChange(true)
}

// ClearCap removes the cap in O(1); Sum returns the unclamped total again.
func (m *multiset[E]) ClearCap() {
	var zero E
	m.cap, m.capped = zero, false
	m.opt.Metrics.CapChange(false)
}

// Cap returns the current cap and whether one is set.
func (m *multiset[E]) Cap() (E, bool) { return m.cap, m.capped }

// Len returns the number of stored elements, duplicates counted.
func (m *multiset[E]) Len() int { return len(m.values) }

// Total returns the unclamped sum of all elements, ignoring any cap.
func (m *multiset[E]) Total() uint64 {
	if len(m.values) == 0 {
		return 0
	}
	return m.prefix[len(m.values)-1]
}

// Min returns the smallest element, or ok=false when empty.
func (m *multiset[E]) Min() (E, bool) {
	if len(m.values) == 0 {
		var zero E
		return zero, false
	}
	return m.values[0], true
}

// Max returns the largest element, or ok=false when empty.
func (m *multiset[E]) Max() (E, bool) {
	if len(m.values) == 0 {
		var zero E
		return zero, false
	}
	return m.values[len(m.values)-1], true
}
