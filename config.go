package goGrant

// Config controls cache bounding, audit dispatch, and metrics collection.
// Config values are copied by WithConfig and validated in Build; a zero
// Config is usable (unbounded cache, audit and metrics disabled).
type Config struct {
	Cache   CacheConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
CACHE CONFIG
====================================
*/

// CacheConfig bounds the resolution cache.
type CacheConfig struct {
	// MaxEntries caps the number of memoized token sets. 0 means unbounded;
	// the cache is append-only, so highly varied or adversarial token sets
	// can grow memory without limit in long-running processes. With a bound,
	// sets resolved past the cap are computed correctly but not stored, and
	// MetricCacheFull counts the overflow.
	MaxEntries int
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull drops events (and counts them via AuditDropped) instead of
	// blocking Get when the buffer is full.
	DropIfFull bool
	// EmitResolves emits an event for every successful first-time
	// resolution, not only for failures.
	EmitResolves bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig controls counter and histogram collection.
type MetricsConfig struct {
	Enabled                bool
	EnableLatencyHistogram bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig returns the baseline configuration: unbounded cache, audit
// disabled with a 1024-event drop-if-full buffer, metrics disabled.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			MaxEntries: 0,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                false,
			EnableLatencyHistogram: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	// No reference fields today; the copy keeps WithConfig insulated from
	// later caller mutation if any are added.
	return cfg
}

func validateConfig(cfg Config) error {
	if cfg.Cache.MaxEntries < 0 {
		return ErrCacheMaxEntriesNegative
	}
	if cfg.Audit.BufferSize < 0 {
		return ErrAuditBufferNegative
	}
	return nil
}
