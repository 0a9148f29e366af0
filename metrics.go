package goGrant

import (
	"sync/atomic"
	"time"
)

// MetricID identifies one counter or histogram tracked by the engine.
type MetricID uint16

const (
	// MetricResolveSuccess counts resolutions that produced a Privilege.
	MetricResolveSuccess MetricID = iota
	// MetricResolveFailure counts failed resolution attempts.
	MetricResolveFailure
	// MetricUnknownPrivilege counts failures caused by an unknown token.
	MetricUnknownPrivilege
	// MetricCacheHit counts Get calls served from the cache.
	MetricCacheHit
	// MetricCacheMiss counts resolver executions (one per distinct novel key
	// under single-flight).
	MetricCacheMiss
	// MetricCacheFull counts resolved values left uncached because the
	// configured cache bound was reached.
	MetricCacheFull
	// MetricNoneShortcut counts Get calls with a nil or empty token set.
	MetricNoneShortcut
	// MetricResolveLatency is the Get latency histogram.
	MetricResolveLatency
	metricIDCount
)

const (
	histBucketCount = 8
	cacheLineSize   = 64
)

type metricHistogram struct {
	buckets [histBucketCount]uint64
}

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics stores engine counters in cache-line-padded slots updated with
// atomic adds. The write path is allocation-free.
type Metrics struct {
	enabled       bool
	enableLatency bool
	counters      [metricIDCount]paddedCounter
	histograms    [metricIDCount]metricHistogram
}

// MetricsSnapshot is a point-in-time copy of all counters and histograms,
// consumed by the exporters under metrics/export.
type MetricsSnapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

// NewMetrics creates metric storage per the given config. A disabled
// Metrics value is valid and makes every write a no-op.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{
		enabled:       cfg.Enabled,
		enableLatency: cfg.Enabled && cfg.EnableLatencyHistogram,
	}
}

// Enabled reports whether counters are being recorded.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc adds one to the identified counter.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Observe records a latency sample into the resolve-latency histogram.
func (m *Metrics) Observe(id MetricID, d time.Duration) {
	if m == nil || !m.enableLatency || id != MetricResolveLatency {
		return
	}
	atomic.AddUint64(&m.histograms[id].buckets[bucketIndex(d)], 1)
}

// Value returns the current value of one counter.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot copies all counters and histograms.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}

	s := MetricsSnapshot{
		Counters:   make(map[MetricID]uint64, int(metricIDCount)),
		Histograms: make(map[MetricID][]uint64, 1),
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	if m.enableLatency {
		buckets := make([]uint64, histBucketCount)
		for i := 0; i < histBucketCount; i++ {
			buckets[i] = atomic.LoadUint64(&m.histograms[MetricResolveLatency].buckets[i])
		}
		s.Histograms[MetricResolveLatency] = buckets
	}
	return s
}

// bucketIndex maps a resolve latency to its histogram bucket. Resolution is
// in-memory automaton algebra, so the buckets are microsecond-scale:
// ≤50µs, ≤100µs, ≤250µs, ≤500µs, ≤1ms, ≤5ms, ≤25ms, +Inf.
func bucketIndex(d time.Duration) int {
	us := d.Microseconds()
	switch {
	case us <= 50:
		return 0
	case us <= 100:
		return 1
	case us <= 250:
		return 2
	case us <= 500:
		return 3
	case us <= 1000:
		return 4
	case us <= 5000:
		return 5
	case us <= 25000:
		return 6
	default:
		return 7
	}
}
