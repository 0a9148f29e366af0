package prometheus

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goGrant "github.com/MrEthical07/goGrant"
)

type fakeSource struct {
	snapshot goGrant.MetricsSnapshot
	dropped  uint64
}

func (f *fakeSource) MetricsSnapshot() goGrant.MetricsSnapshot { return f.snapshot }
func (f *fakeSource) AuditDropped() uint64                     { return f.dropped }

func testSource() *fakeSource {
	return &fakeSource{
		snapshot: goGrant.MetricsSnapshot{
			Counters: map[goGrant.MetricID]uint64{
				goGrant.MetricResolveSuccess: 7,
				goGrant.MetricCacheHit:       5,
				goGrant.MetricCacheMiss:      2,
			},
			Histograms: map[goGrant.MetricID][]uint64{
				goGrant.MetricResolveLatency: {3, 1, 0, 0, 0, 0, 0, 1},
			},
		},
		dropped: 4,
	}
}

func TestRenderCounters(t *testing.T) {
	exporter := NewPrometheusExporterFromSource(testSource())
	out := exporter.Render()

	for _, want := range []string{
		"gogrant_resolve_success_total 7",
		"gogrant_cache_hit_total 5",
		"gogrant_cache_miss_total 2",
		"gogrant_audit_dropped_total 4",
		"# TYPE gogrant_resolve_success_total counter",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}
}

func TestRenderHistogramIsCumulative(t *testing.T) {
	exporter := NewPrometheusExporterFromSource(testSource())
	out := exporter.Render()

	for _, want := range []string{
		"# TYPE gogrant_resolve_latency_seconds histogram",
		`gogrant_resolve_latency_seconds_bucket{le="0.00005"} 3`,
		`gogrant_resolve_latency_seconds_bucket{le="0.0001"} 4`,
		`gogrant_resolve_latency_seconds_bucket{le="+Inf"} 5`,
		"gogrant_resolve_latency_seconds_count 5",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}
}

func TestRenderEmptySource(t *testing.T) {
	exporter := NewPrometheusExporterFromSource(&fakeSource{
		snapshot: goGrant.MetricsSnapshot{
			Counters:   map[goGrant.MetricID]uint64{},
			Histograms: map[goGrant.MetricID][]uint64{},
		},
	})
	if out := exporter.Render(); out != "" {
		t.Fatalf("expected empty render, got %q", out)
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	exporter := NewPrometheusExporterFromSource(testSource())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	exporter.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "gogrant_resolve_success_total") {
		t.Fatal("handler body missing metrics")
	}
}

func TestRenderFromEngine(t *testing.T) {
	cfg := goGrant.DefaultConfig()
	cfg.Metrics.Enabled = true
	engine, err := goGrant.New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer engine.Close()

	if _, err := engine.Get([]string{"monitor"}); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	out := NewPrometheusExporter(engine).Render()
	if !strings.Contains(out, "gogrant_cache_miss_total 1") {
		t.Fatalf("engine-backed render missing miss counter:\n%s", out)
	}
}
