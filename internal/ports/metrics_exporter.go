package ports

import (
	"context"
	"time"
)

// MetricsExporter exports comparison metrics to an external observability system.
type MetricsExporter interface {
	// RecordComparison records one served comparison.
	RecordComparison(ctx context.Context, e ComparisonEvent)
	// RecordDatasetLoad records how long the dataset took to load and its size.
	RecordDatasetLoad(ctx context.Context, rows int, took time.Duration)
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// ComparisonEvent describes a served comparison.
type ComparisonEvent struct {
	Feature        string
	Numeric        bool
	FightersMissed int
	Source         string // "web", "api" or "cli"
}
