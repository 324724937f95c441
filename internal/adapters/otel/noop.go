package otel

import (
	"context"
	"time"

	"github.com/emiliopalmerini/ufcompare/internal/ports"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordComparison(ctx context.Context, ev ports.ComparisonEvent) {}

func (e *NoOpExporter) RecordDatasetLoad(ctx context.Context, rows int, took time.Duration) {}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
