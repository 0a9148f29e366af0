package otel

import (
	"errors"
	"testing"

	goGrant "github.com/MrEthical07/goGrant"
	"go.opentelemetry.io/otel/metric/noop"
)

type fakeSource struct {
	snapshot goGrant.MetricsSnapshot
}

func (f *fakeSource) MetricsSnapshot() goGrant.MetricsSnapshot { return f.snapshot }
func (f *fakeSource) AuditDropped() uint64                     { return 0 }

func TestNewOTelExporterNilMeter(t *testing.T) {
	if _, err := NewOTelExporterFromSource(nil, &fakeSource{}); !errors.Is(err, ErrNilMeter) {
		t.Fatalf("expected ErrNilMeter, got %v", err)
	}
}

func TestNewOTelExporterNilSource(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	if _, err := NewOTelExporterFromSource(meter, nil); !errors.Is(err, ErrNilSource) {
		t.Fatalf("expected ErrNilSource, got %v", err)
	}
}

func TestNewOTelExporterRegistersAndCloses(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	exporter, err := NewOTelExporterFromSource(meter, &fakeSource{
		snapshot: goGrant.MetricsSnapshot{
			Counters:   map[goGrant.MetricID]uint64{goGrant.MetricResolveSuccess: 1},
			Histograms: map[goGrant.MetricID][]uint64{},
		},
	})
	if err != nil {
		t.Fatalf("exporter construction failed: %v", err)
	}
	if err := exporter.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestNewOTelExporterFromEngine(t *testing.T) {
	engine, err := goGrant.New().Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer engine.Close()

	meter := noop.NewMeterProvider().Meter("test")
	exporter, err := NewOTelExporter(meter, engine)
	if err != nil {
		t.Fatalf("exporter construction failed: %v", err)
	}
	defer func() { _ = exporter.Close() }()
}
