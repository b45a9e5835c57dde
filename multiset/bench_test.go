package multiset

import (
	"math/rand"
	"testing"
)

// benchValues builds a deterministic random input of the given size.
func benchValues(n int) []int {
	r := rand.New(rand.NewSource(1))
	values := make([]int, n)
	for i := range values {
		values[i] = r.Intn(1_000_000)
	}
	return values
}

// benchmarkCappedSum exercises the set-cap → sum cycle, the workload the
// sorted + prefix-sum layout exists for.
func benchmarkCappedSum(b *testing.B, n int) {
	values := benchValues(n)
	m, err := New(values, Options[int]{})
	if err != nil {
		b.Fatal(err)
	}
	r := rand.New(rand.NewSource(2))

	b.ReportAllocs()
	b.ResetTimer()

	var sink uint64
	for i := 0; i < b.N; i++ {
		m.SetCap(r.Intn(1_000_000))
		sink += m.Sum()
	}
	_ = sink
}

func BenchmarkCappedSum_1e3(b *testing.B) { benchmarkCappedSum(b, 1_000) }
func BenchmarkCappedSum_1e5(b *testing.B) { benchmarkCappedSum(b, 100_000) }
func BenchmarkCappedSum_1e7(b *testing.B) { benchmarkCappedSum(b, 10_000_000) }

// benchmarkNaiveSum is the O(n) clamp-and-scan baseline on the same
// workload, for comparison against the O(log n) engine.
func benchmarkNaiveSum(b *testing.B, n int) {
	values := benchValues(n)
	r := rand.New(rand.NewSource(2))

	b.ReportAllocs()
	b.ResetTimer()

	var sink uint64
	for i := 0; i < b.N; i++ {
		sink += naiveCappedSum(values, r.Intn(1_000_000))
	}
	_ = sink
}

func BenchmarkNaiveSum_1e3(b *testing.B) { benchmarkNaiveSum(b, 1_000) }
func BenchmarkNaiveSum_1e5(b *testing.B) { benchmarkNaiveSum(b, 100_000) }

// Uncapped Sum is a single prefix-sum read; this pins its O(1) cost.
func BenchmarkUncappedSum_1e5(b *testing.B) {
	m, err := New(benchValues(100_000), Options[int]{})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var sink uint64
	for i := 0; i < b.N; i++ {
		sink += m.Sum()
	}
	_ = sink
}

// Construction cost: copy + sort + prefix pass.
func BenchmarkNew_1e5(b *testing.B) {
	values := benchValues(100_000)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := New(values, Options[int]{}); err != nil {
			b.Fatal(err)
		}
	}
}
