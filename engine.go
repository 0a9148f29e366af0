package goGrant

import (
	"context"
	"errors"
	"time"
)

// Engine is the public entry point: a compiled privilege catalog, the
// resolver, the resolution cache, and the observability plumbing around
// them. Engines are built once via Builder.Build and are immutable
// afterward; all methods are safe for concurrent use.
type Engine struct {
	config  Config
	catalog *catalog
	cache   *privilegeCache
	metrics *Metrics
	audit   *auditDispatcher
}

// Get resolves a set of privilege tokens (predefined names and/or literal
// action patterns, case-insensitive) into one Privilege. A nil or empty
// set yields the NONE privilege without touching the cache. Distinct sets
// are memoized by content; repeated calls with the same content (in any
// order) return the stored value.
func (e *Engine) Get(tokens []string) (*Privilege, error) {
	if len(tokens) == 0 {
		e.metrics.Inc(MetricNoneShortcut)
		return e.catalog.none, nil
	}

	start := time.Now()
	priv, err := e.cache.get(tokens)
	e.metrics.Observe(MetricResolveLatency, time.Since(start))

	if err != nil {
		e.metrics.Inc(MetricResolveFailure)
		var unknown *UnknownPrivilegeError
		if errors.As(err, &unknown) {
			e.metrics.Inc(MetricUnknownPrivilege)
		}
		e.emitResolveEvent(tokens, err)
		return nil, err
	}

	e.metrics.Inc(MetricResolveSuccess)
	if e.config.Audit.EmitResolves {
		e.emitResolveEvent(tokens, nil)
	}
	return priv, nil
}

// None returns the sentinel privilege that permits nothing.
func (e *Engine) None() *Privilege {
	return e.catalog.none
}

// ValidNames returns the sorted list of predefined privilege names.
func (e *Engine) ValidNames() []string {
	names := e.catalog.validNames()
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// CacheLen returns the number of memoized token sets.
func (e *Engine) CacheLen() int {
	if e == nil {
		return 0
	}
	return e.cache.len()
}

// MetricsSnapshot copies the engine's counters and histograms.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

// AuditDropped returns the number of audit events dropped under
// backpressure.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// Close drains and stops the audit dispatcher. The engine remains usable
// for resolution; further audit events are discarded.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

func (e *Engine) emitResolveEvent(tokens []string, err error) {
	if e.audit == nil {
		return
	}
	event := newAuditEvent(EventResolve, tokens)
	if err != nil {
		event.EventType = EventResolveFailed
		event.Error = err.Error()
	} else {
		event.Success = true
	}
	e.audit.Emit(context.Background(), event)
}
