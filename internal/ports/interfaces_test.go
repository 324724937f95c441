package ports_test

import (
	"testing"

	"github.com/emiliopalmerini/ufcompare/internal/adapters/csvfile"
	"github.com/emiliopalmerini/ufcompare/internal/adapters/logger"
	"github.com/emiliopalmerini/ufcompare/internal/adapters/otel"
	"github.com/emiliopalmerini/ufcompare/internal/ports"
)

// Compile-time interface conformance checks.
// These verify that concrete adapters properly implement their port interfaces.

func TestDatasetLoaderConformance(t *testing.T) {
	var _ ports.DatasetLoader = (*csvfile.Loader)(nil)
}

func TestLoggerConformance(t *testing.T) {
	var _ ports.Logger = (*logger.StdLogger)(nil)
	var _ ports.Logger = (*logger.NopLogger)(nil)
}

func TestMetricsExporterConformance(t *testing.T) {
	var _ ports.MetricsExporter = (*otel.Exporter)(nil)
	var _ ports.MetricsExporter = (*otel.NoOpExporter)(nil)
}
