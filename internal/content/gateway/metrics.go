package gateway

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type gatewayMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
}

func newGatewayMetrics() (*gatewayMetrics, error) {
	meter := otel.GetMeterProvider().Meter("cms-console")

	duration, err := meter.Float64Histogram(
		fmt.Sprintf("%s.%s", "cms_console", "content_service.request.duration.seconds"),
		metric.WithDescription("Duration of content service requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, err
	}

	total, err := meter.Int64Counter(
		fmt.Sprintf("%s.%s", "cms_console", "content_service.requests.total"),
		metric.WithDescription("Total number of content service requests"),
	)
	if err != nil {
		return nil, err
	}

	return &gatewayMetrics{duration: duration, total: total}, nil
}

func (m *gatewayMetrics) record(ctx context.Context, operation string, statusCode int, start time.Time) {
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.Int("http.status_code", statusCode),
	)
	m.duration.Record(ctx, time.Since(start).Seconds(), attrs)
	m.total.Add(ctx, 1, attrs)
}
