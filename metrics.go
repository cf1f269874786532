package goSession

import "sync/atomic"

// MetricID identifies one engine counter.
type MetricID uint16

const (
	// MetricSessionRestored counts Opens that rehydrated an existing session.
	MetricSessionRestored MetricID = iota
	// MetricSessionMinted counts fresh identifiers, whatever made the
	// presented one unusable (or absent).
	MetricSessionMinted
	// MetricBadSignature counts signature verification failures on Open.
	MetricBadSignature
	// MetricDecodeFailure counts corrupt or unreadable stored payloads.
	MetricDecodeFailure
	// MetricHijackRejected counts bound-address mismatches.
	MetricHijackRejected
	// MetricSessionSaved counts backend writes performed by Save.
	MetricSessionSaved
	// MetricSessionDeleted counts active deletions of emptied sessions.
	MetricSessionDeleted
	// MetricSaveSkipped counts Saves gated off by explicit mode or the
	// static-file policy.
	MetricSaveSkipped
	metricIDCount
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics holds the engine's in-process counters. Increments are lock-free;
// disabled metrics cost one predictable branch.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

// MetricsSnapshot is a point-in-time copy of the counters, returned by
// [SessionInterface.MetricsSnapshot].
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

func newMetrics(enabled bool) *Metrics {
	return &Metrics{enabled: enabled}
}

func (m *Metrics) inc(id MetricID) {
	if m == nil || !m.enabled {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

func (m *Metrics) snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{Counters: make(map[MetricID]uint64, int(metricIDCount))}
	if m == nil || !m.enabled {
		return snap
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		snap.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return snap
}
