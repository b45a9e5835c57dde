//go:build go1.18

package multiset

import (
	"testing"
)

// Fuzz Sum against the naive clamp-and-scan reference under arbitrary
// inputs and cap sequences. Guards against panics and off-by-one errors
// around the boundary search.
// NOTE: We cap the input length to keep per-iteration work bounded
// (this does not weaken the invariants we check).
func FuzzMultiset_SumMatchesNaive(f *testing.F) {
	// Seed corpus: empty, the documented scenario, ties at the cap,
	// duplicates, a long run.
	f.Add([]byte{}, uint16(0), false)
	f.Add([]byte{1, 2, 3, 4, 5}, uint16(2), true)
	f.Add([]byte{2, 2, 2}, uint16(2), true)
	f.Add([]byte{0, 0, 255, 255}, uint16(255), true)
	f.Add([]byte{9, 1, 3, 5, 2, 5, 6, 1, 3, 4}, uint16(4), true)

	f.Fuzz(func(t *testing.T, data []byte, cap uint16, capped bool) {
		const limit = 1 << 12 // 4096
		if len(data) > limit {
			data = data[:limit]
		}

		// Each byte is one element; bytes are non-negative by construction.
		values := make([]int, len(data))
		for i, b := range data {
			values[i] = int(b)
		}

		m, err := New(values, Options[int]{})
		if err != nil {
			t.Fatalf("New rejected non-negative input: %v", err)
		}

		// Uncapped sum must match the plain total.
		if want := naiveCappedSum(values, 1<<20); m.Sum() != want {
			t.Fatalf("uncapped: want %d, got %d", want, m.Sum())
		}

		if capped {
			m.SetCap(int(cap))
			if want := naiveCappedSum(values, int(cap)); m.Sum() != want {
				t.Fatalf("cap %d: want %d, got %d", cap, want, m.Sum())
			}

			// Clearing must restore the unclamped total exactly.
			m.ClearCap()
			if want := naiveCappedSum(values, 1<<20); m.Sum() != want {
				t.Fatalf("after clear: want %d, got %d", want, m.Sum())
			}
		}
	})
}
