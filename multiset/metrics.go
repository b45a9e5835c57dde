package multiset

// Metrics exposes multiset-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	// Query is called once per Sum; capped reports whether a cap was
	// active when the query was served.
	Query(capped bool)
	// CapChange is called on SetCap (set=true) and ClearCap (set=false).
	CapChange(set bool)
	// Size is called once at construction with the element count and the
	// unclamped total. Both are fixed for the multiset's lifetime.
	Size(elements int, total uint64)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
// It is safe for concurrent use and intended as the default when
// no observability backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) Query(bool)                      {}
func (NoopMetrics) CapChange(bool)                  {}
func (NoopMetrics) Size(elements int, total uint64) {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
