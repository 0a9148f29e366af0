package internaldefs

import (
	goGrant "github.com/MrEthical07/goGrant"
)

// CounterDef maps one engine counter to its exported name and help text.
type CounterDef struct {
	ID   goGrant.MetricID
	Name string
	Help string
}

// HistogramDef maps one engine histogram to its exported name and help text.
type HistogramDef struct {
	ID   goGrant.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported counter, in exposition order.
var CounterDefs = []CounterDef{
	{ID: goGrant.MetricResolveSuccess, Name: "gogrant_resolve_success_total", Help: "Privilege resolutions that produced a grant."},
	{ID: goGrant.MetricResolveFailure, Name: "gogrant_resolve_failure_total", Help: "Failed privilege resolution attempts."},
	{ID: goGrant.MetricUnknownPrivilege, Name: "gogrant_unknown_privilege_total", Help: "Resolution failures caused by an unknown privilege token."},
	{ID: goGrant.MetricCacheHit, Name: "gogrant_cache_hit_total", Help: "Resolutions served from the privilege cache."},
	{ID: goGrant.MetricCacheMiss, Name: "gogrant_cache_miss_total", Help: "Resolver executions for previously unseen token sets."},
	{ID: goGrant.MetricCacheFull, Name: "gogrant_cache_full_total", Help: "Resolved values left uncached because the cache bound was reached."},
	{ID: goGrant.MetricNoneShortcut, Name: "gogrant_none_shortcut_total", Help: "Get calls with a nil or empty token set."},
}

// HistogramDefs lists every exported histogram.
var HistogramDefs = []HistogramDef{
	{ID: goGrant.MetricResolveLatency, Name: "gogrant_resolve_latency_seconds", Help: "Get latency histogram."},
}

// HistogramBounds are the upper bucket bounds in seconds, matching the
// engine's microsecond-scale buckets.
var HistogramBounds = []string{
	"0.00005",
	"0.0001",
	"0.00025",
	"0.0005",
	"0.001",
	"0.005",
	"0.025",
	"+Inf",
}

// HistogramBoundSuffix gives instrument-name-safe forms of HistogramBounds.
var HistogramBoundSuffix = []string{
	"50us",
	"100us",
	"250us",
	"500us",
	"1ms",
	"5ms",
	"25ms",
	"inf",
}

// NormalizeBuckets pads or truncates a raw bucket slice to the fixed width.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts to cumulative counts.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
