package otel

import (
	"context"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/emiliopalmerini/ufcompare/internal/ports"
)

func TestNewExporter_Disabled(t *testing.T) {
	if _, err := NewExporter(context.Background(), Config{}); err == nil {
		t.Fatal("expected error when exporter is disabled")
	}
	if _, err := NewExporter(context.Background(), Config{Enabled: true}); err == nil {
		t.Fatal("expected error when endpoint is empty")
	}
}

func TestExporter_RecordsMetrics(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	exp, err := newExporter(provider)
	if err != nil {
		t.Fatalf("newExporter: %v", err)
	}
	t.Cleanup(func() { _ = exp.Close(ctx) })

	exp.RecordComparison(ctx, ports.ComparisonEvent{Feature: "losses", Numeric: true, Source: "web"})
	exp.RecordComparison(ctx, ports.ComparisonEvent{Feature: "stance", FightersMissed: 1, Source: "api"})
	exp.RecordDatasetLoad(ctx, 4000, 120*time.Millisecond)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	found := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			found[m.Name] = true
			if m.Name == "ufcompare_comparisons_total" {
				sum, ok := m.Data.(metricdata.Sum[int64])
				if !ok {
					t.Fatalf("expected int64 sum, got %T", m.Data)
				}
				var total int64
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
				if total != 2 {
					t.Errorf("expected 2 comparisons, got %d", total)
				}
			}
		}
	}
	for _, name := range []string{
		"ufcompare_comparisons_total",
		"ufcompare_fighter_misses_total",
		"ufcompare_dataset_load_seconds",
		"ufcompare_dataset_rows",
	} {
		if !found[name] {
			t.Errorf("expected metric %s to be exported", name)
		}
	}
}

func TestNoOpExporter(t *testing.T) {
	exp := NewNoOpExporter()
	exp.RecordComparison(context.Background(), ports.ComparisonEvent{})
	exp.RecordDatasetLoad(context.Background(), 1, time.Second)
	if err := exp.Close(context.Background()); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
