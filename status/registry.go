package status

import "sync/atomic"

// Counter keys written by the simulation loop
const (
	KeyTicks         = "sim.ticks"
	KeyRounds        = "sim.rounds"
	KeyMovesAccepted = "moves.accepted"
	KeyMovesBlocked  = "moves.blocked"
	KeyPlayerRejects = "player.rejected"
	KeyFieldBuilds   = "nav.builds"

	KeySession = "session"
	KeyNavMode = "nav.mode"
)

// Registry holds the run counters and labels
// The loop caches pointers at construction; readers Range or Snapshot at any time
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// Metric is one counter value captured by Snapshot
type Metric struct {
	Key   string
	Value int64
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Int returns the current value of counter key, zero when never written
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// Snapshot returns every counter in key order
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.Ints.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out = append(out, Metric{Key: key, Value: ptr.Load()})
	})
	return out
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}
