package otel

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/ufcompare/internal/ports"
)

const (
	serviceName    = "ufcompare"
	serviceVersion = "1.0.0"
)

// Exporter exports comparison metrics to an OTEL Collector.
type Exporter struct {
	provider      *sdkmetric.MeterProvider
	comparisons   metric.Int64Counter
	fighterMisses metric.Int64Counter
	loadDuration  metric.Float64Histogram
	datasetRows   metric.Int64Histogram
}

// NewExporter creates an OTLP/gRPC exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return newExporter(provider)
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	comparisons, err := meter.Int64Counter(
		"ufcompare_comparisons_total",
		metric.WithDescription("Total comparisons served"),
		metric.WithUnit("{comparison}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating comparisons counter: %w", err)
	}

	fighterMisses, err := meter.Int64Counter(
		"ufcompare_fighter_misses_total",
		metric.WithDescription("Fighter lookups that matched no row"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fighter misses counter: %w", err)
	}

	loadDuration, err := meter.Float64Histogram(
		"ufcompare_dataset_load_seconds",
		metric.WithDescription("Time spent loading the fighter dataset"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating load duration histogram: %w", err)
	}

	datasetRows, err := meter.Int64Histogram(
		"ufcompare_dataset_rows",
		metric.WithDescription("Rows in the loaded fighter dataset"),
		metric.WithUnit("{row}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating dataset rows histogram: %w", err)
	}

	return &Exporter{
		provider:      provider,
		comparisons:   comparisons,
		fighterMisses: fighterMisses,
		loadDuration:  loadDuration,
		datasetRows:   datasetRows,
	}, nil
}

// RecordComparison records one served comparison.
func (e *Exporter) RecordComparison(ctx context.Context, ev ports.ComparisonEvent) {
	opt := metric.WithAttributes(
		attribute.String("feature", ev.Feature),
		attribute.Bool("numeric", ev.Numeric),
		attribute.String("source", ev.Source),
	)
	e.comparisons.Add(ctx, 1, opt)
	if ev.FightersMissed > 0 {
		e.fighterMisses.Add(ctx, int64(ev.FightersMissed), metric.WithAttributes(attribute.String("source", ev.Source)))
	}
}

// RecordDatasetLoad records the dataset load time and row count.
func (e *Exporter) RecordDatasetLoad(ctx context.Context, rows int, took time.Duration) {
	e.loadDuration.Record(ctx, took.Seconds())
	e.datasetRows.Record(ctx, int64(rows))
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
