package prom

import (
	"github.com/IvanBrykalov/cappedsum/multiset"
	"github.com/prometheus/client_golang/prometheus"
)

// Adapter implements multiset.Metrics and exports Prometheus counters/gauges.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe.
type Adapter struct {
	queries    *prometheus.CounterVec
	capChanges *prometheus.CounterVec
	sizeEnt    prometheus.Gauge
	sizeTotal  prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "queries_total",
				Help:        "Sum queries by mode",
				ConstLabels: constLabels,
			},
			[]string{"mode"},
		),
		capChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "cap_changes_total",
				Help:        "Cap changes by action",
				ConstLabels: constLabels,
			},
			[]string{"action"},
		),
		sizeEnt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "size_elements",
			Help:        "Number of stored elements",
			ConstLabels: constLabels,
		}),
		sizeTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "total_sum",
			Help:        "Unclamped sum of all stored elements",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.queries, a.capChanges, a.sizeEnt, a.sizeTotal)
	return a
}

// Query increments the query counter with a mode label.
func (a *Adapter) Query(capped bool) {
	a.queries.WithLabelValues(mode(capped)).Inc()
}

// CapChange increments the cap-change counter with an action label.
func (a *Adapter) CapChange(set bool) {
	a.capChanges.WithLabelValues(action(set)).Inc()
}

// Size updates gauges for the element count and the unclamped total.
func (a *Adapter) Size(elements int, total uint64) {
	a.sizeEnt.Set(float64(elements))
	a.sizeTotal.Set(float64(total))
}

// mode maps the query state to a stable label value.
func mode(capped bool) string {
	if capped {
		return "capped"
	}
	return "uncapped"
}

// action maps the cap-change direction to a stable label value.
func action(set bool) string {
	if set {
		return "set"
	}
	return "clear"
}

// Compile-time check: ensure Adapter implements multiset.Metrics.
var _ multiset.Metrics = (*Adapter)(nil)
