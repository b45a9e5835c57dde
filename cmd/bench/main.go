// Command bench runs a synthetic cap/sum workload against the multiset and exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	pmet "github.com/IvanBrykalov/cappedsum/metrics/prom"
	"github.com/IvanBrykalov/cappedsum/multiset"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// ---- Flags ----
	var (
		elems  = flag.Int("n", 1_000_000, "elements per multiset")
		valMax = flag.Int("max", 1_000_000, "values are drawn uniformly from [0..max)")

		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines (one multiset each)")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		sumPct   = flag.Int("sums", 80, "percentage of operations that are Sum [0..100]; the rest change the cap")
		clearPct = flag.Int("clears", 5, "percentage of cap changes that clear the cap [0..100]")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "random seed")

		baseline = flag.Int("baseline", 10_000, "queries for the naive clamp-and-scan comparison (0 = skip)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "multiset", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	// ---- Snapshot flags for goroutines ----
	elemsN := *elems
	valMaxN := *valMax
	if valMaxN < 1 {
		valMaxN = 1
	}
	sumPctVal := *sumPct
	clearPctVal := *clearPct
	seedBase := *seed
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	// ---- Naive-scan comparison on a single multiset ----
	if *baseline > 0 {
		runBaseline(elemsN, valMaxN, *baseline, seedBase)
	}

	// ---- Load generation ----
	// The multiset defines no internal synchronization (SetCap mutates state
	// read by Sum), so each worker owns its own instance exclusively.
	var sums, capSets, capClears, total, checksum uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(workersN)
	for w := 0; w < workersN; w++ {
		go func(id int) {
			defer wg.Done()

			// Each worker gets its own RNG (rand.Rand is NOT goroutine-safe).
			localR := rand.New(rand.NewSource(seedBase + int64(id)*9973))

			m, err := multiset.New(randomValues(localR, elemsN, valMaxN), multiset.Options[int]{
				Metrics: metrics,
			})
			if err != nil {
				log.Fatalf("worker %d: %v", id, err)
			}

			var local uint64
			for {
				select {
				case <-ctx.Done():
					atomic.AddUint64(&checksum, local)
					return
				default:
				}

				atomic.AddUint64(&total, 1)
				if int(localR.Int31n(100)) < sumPctVal {
					atomic.AddUint64(&sums, 1)
					local += m.Sum()
				} else if int(localR.Int31n(100)) < clearPctVal {
					atomic.AddUint64(&capClears, 1)
					m.ClearCap()
				} else {
					atomic.AddUint64(&capSets, 1)
					m.SetCap(localR.Intn(valMaxN))
				}
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	// ---- Report ----
	ops := atomic.LoadUint64(&total)
	fmt.Printf("n=%d max=%d workers=%d dur=%v seed=%d\n",
		elemsN, valMaxN, workersN, elapsed, seedBase)
	fmt.Printf("ops=%d (%.0f ops/s)  sums=%d  cap-sets=%d  cap-clears=%d\n",
		ops, float64(ops)/elapsed.Seconds(),
		atomic.LoadUint64(&sums), atomic.LoadUint64(&capSets), atomic.LoadUint64(&capClears))
	fmt.Printf("checksum=%d\n", atomic.LoadUint64(&checksum))
}

// runBaseline times the engine against a naive clamp-and-scan over the same
// caps and prints the speedup. Also cross-checks the results.
func runBaseline(n, valMax, queries int, seed int64) {
	r := rand.New(rand.NewSource(seed))
	values := randomValues(r, n, valMax)

	m, err := multiset.New(values, multiset.Options[int]{})
	if err != nil {
		log.Fatalf("baseline: %v", err)
	}

	caps := make([]int, queries)
	for i := range caps {
		caps[i] = r.Intn(valMax)
	}

	var engineSum uint64
	engineStart := time.Now()
	for _, c := range caps {
		m.SetCap(c)
		engineSum += m.Sum()
	}
	engineDur := time.Since(engineStart)

	var naiveSum uint64
	naiveStart := time.Now()
	for _, c := range caps {
		naiveSum += naiveCappedSum(values, c)
	}
	naiveDur := time.Since(naiveStart)

	if engineSum != naiveSum {
		log.Fatalf("baseline mismatch: engine=%d naive=%d", engineSum, naiveSum)
	}
	fmt.Printf("baseline: %d queries over %d elements: engine=%v naive=%v (%.1fx)\n",
		queries, n, engineDur, naiveDur, float64(naiveDur)/float64(engineDur))
}

// naiveCappedSum is the O(n) reference: clamp every element and add.
func naiveCappedSum(values []int, cap int) uint64 {
	var sum uint64
	for _, v := range values {
		if v > cap {
			v = cap
		}
		sum += uint64(v)
	}
	return sum
}

func randomValues(r *rand.Rand, n, valMax int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = r.Intn(valMax)
	}
	return values
}
