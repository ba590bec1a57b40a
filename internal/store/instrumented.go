package store

import (
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/heysubinoy/kvgate/pkg/kv"
)

// InstrumentedStore wraps any kv.Store implementation with operation counters
// and latency histograms registered in a metrics.Set.
type InstrumentedStore struct {
	store kv.Store

	inserts   *metrics.Counter
	gets      *metrics.Counter
	getMisses *metrics.Counter

	insertDuration *metrics.Histogram
	getDuration    *metrics.Histogram
}

// Compile-time check to ensure InstrumentedStore implements kv.Store.
var _ kv.Store = (*InstrumentedStore)(nil)

// NewInstrumentedStore wraps a store with instrumentation. Metric names are
// registered in set, so each set may back only one InstrumentedStore.
func NewInstrumentedStore(store kv.Store, set *metrics.Set) *InstrumentedStore {
	s := &InstrumentedStore{
		store:          store,
		inserts:        set.NewCounter(`kv_store_operations_total{op="insert"}`),
		gets:           set.NewCounter(`kv_store_operations_total{op="get"}`),
		getMisses:      set.NewCounter(`kv_store_get_misses_total`),
		insertDuration: set.NewHistogram(`kv_store_operation_duration_seconds{op="insert"}`),
		getDuration:    set.NewHistogram(`kv_store_operation_duration_seconds{op="get"}`),
	}

	if sized, ok := store.(interface{ Len() int }); ok {
		set.NewGauge(`kv_store_keys`, func() float64 {
			return float64(sized.Len())
		})
	}

	return s
}

// Insert delegates to the wrapped store and records timing.
func (s *InstrumentedStore) Insert(key, value string) error {
	start := time.Now()
	err := s.store.Insert(key, value)
	s.insertDuration.Update(time.Since(start).Seconds())
	s.inserts.Inc()

	return err
}

// Get delegates to the wrapped store and records timing.
func (s *InstrumentedStore) Get(key string) (string, bool) {
	start := time.Now()
	value, found := s.store.Get(key)
	s.getDuration.Update(time.Since(start).Seconds())
	s.gets.Inc()
	if !found {
		s.getMisses.Inc()
	}

	return value, found
}

// GetMetrics returns a snapshot of current counters.
func (s *InstrumentedStore) GetMetrics() MetricsSnapshot {
	return MetricsSnapshot{
		InsertCount:  s.inserts.Get(),
		GetCount:     s.gets.Get(),
		GetMissCount: s.getMisses.Get(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	InsertCount  uint64
	GetCount     uint64
	GetMissCount uint64
}
