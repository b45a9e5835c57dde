// Package multiset provides a capped multiset: an immutable collection of
// non-negative integer values with a mutable per-element cap, answering
// "what is the sum of all values once each is clamped to at most cap?"
// in O(log n) per query after O(n log n) preprocessing.
//
// Design
//
//   - Storage: values are copied, sorted ascending, and paired with a
//     prefix-sum slice at construction. Both are immutable afterwards.
//     The multiset supports no insertion or removal after New.
//
//   - Cap: an optional upper bound applied per element when summing.
//     Setting or clearing the cap is O(1) and never touches stored data,
//     so even a cap of 0 is not a lossy operation. "No cap" is a distinct
//     state (Cap reports ok=false), not a sentinel value.
//
//   - Sum: with no cap set, the last prefix sum is returned in O(1).
//     With a cap c, a binary search finds the boundary index k — the
//     first position whose value exceeds c. Elements below the boundary
//     contribute their own value (prefix sum, O(1)); the n-k elements at
//     or above it each contribute exactly c. Elements equal to the cap
//     are never clamped: min(v, c) == v when v <= c.
//
//   - Metrics: Options.Metrics receives Query/CapChange/Size signals.
//     By default NoopMetrics is used; plug a Prometheus adapter to export
//     metrics.
//
// Basic usage
//
//	m, err := multiset.New([]int{1, 2, 3, 4, 5}, multiset.Options[int]{})
//	if err != nil {
//	    // input contained a negative value
//	}
//	_ = m.Sum() // 15
//	m.SetCap(2)
//	_ = m.Sum() // 9 (1 + 2 + 2 + 2 + 2)
//	m.ClearCap()
//	_ = m.Sum() // 15 again
//
// With an initial cap
//
//	cap := 3
//	m, _ := multiset.New([]int{1, 2, 3, 4, 5}, multiset.Options[int]{Cap: &cap})
//	_ = m.Sum() // 12
//
// Exporting metrics (example Prometheus adapter)
//
//	pm := prom.New(nil, "multiset", "demo", nil) // implements Metrics
//	m, _ := multiset.New(values, multiset.Options[uint32]{Metrics: pm})
//
// Thread-safety & complexity
//
// The multiset defines no internal synchronization. Sum is a pure read and
// may be called from multiple goroutines concurrently as long as no SetCap
// or ClearCap runs at the same time; interleaving cap changes with reads
// requires external exclusive-access discipline (e.g. a single-writer
// lock). Sum is O(log n) capped and O(1) uncapped; SetCap and ClearCap
// are O(1); all accessors are O(1).
package multiset
