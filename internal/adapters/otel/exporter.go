// Package otel exports client-side evaluation metrics to an OTEL Collector
// over OTLP/gRPC. When disabled, the no-op twin keeps callers oblivious.
package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/fairai-labs/fairctl/internal/infrastructure/config"
	"github.com/fairai-labs/fairctl/internal/ports"
)

const (
	serviceName    = "fairctl"
	serviceVersion = "1.0.0"
)

// Exporter exports evaluation metrics to an OTEL Collector.
type Exporter struct {
	provider         *sdkmetric.MeterProvider
	meter            metric.Meter
	evaluationsTotal metric.Int64Counter
	uploadBytes      metric.Int64Counter
	durationHist     metric.Float64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg config.OTEL) (*Exporter, error) {
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

	meter := provider.Meter(serviceName)

	evaluationsTotal, err := meter.Int64Counter(
		"fairctl_evaluations_total",
		metric.WithDescription("Total evaluation requests submitted"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating evaluations counter: %w", err)
	}

	uploadBytes, err := meter.Int64Counter(
		"fairctl_upload_bytes_total",
		metric.WithDescription("Total bytes uploaded to the backend"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating upload counter: %w", err)
	}

	durationHist, err := meter.Float64Histogram(
		"fairctl_evaluation_duration_seconds",
		metric.WithDescription("Wall-clock duration of evaluation requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return &Exporter{
		provider:         provider,
		meter:            meter,
		evaluationsTotal: evaluationsTotal,
		uploadBytes:      uploadBytes,
		durationHist:     durationHist,
	}, nil
}

// RecordEvaluation exports stats for one evaluation request.
func (e *Exporter) RecordEvaluation(ctx context.Context, s *ports.EvaluationStats) error {
	opt := metric.WithAttributes(
		attribute.String("kind", s.Kind),
		attribute.String("status", s.Status),
	)

	e.evaluationsTotal.Add(ctx, 1, opt)
	e.uploadBytes.Add(ctx, s.UploadBytes, opt)
	e.durationHist.Record(ctx, s.Duration.Seconds(), opt)

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
