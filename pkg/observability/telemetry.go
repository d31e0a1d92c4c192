// Package observability wires OpenTelemetry tracing and a Prometheus scrape
// endpoint for the watch daemon. One-shot commands run without telemetry;
// the daemon enables it from config so long-lived polling sessions can be
// traced and scraped.
package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
)

const (
	shutdownTimeout    = 5 * time.Second
	defaultMetricsPath = "/metrics"
)

// Config carries the telemetry settings the watch daemon runs with.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string

	// Tracing exports spans over OTLP HTTP when an endpoint is set.
	TracingEnabled bool
	OTLPEndpoint   string // host:port for OTLP HTTP, e.g. "localhost:4318"
	OTLPInsecure   bool
	SamplingRate   float64 // 0.0 to 1.0; 0 means sample everything

	// Metrics are exposed on a Prometheus scrape endpoint the daemon
	// serves itself.
	MetricsEnabled bool
	MetricsListen  string // e.g. ":9464"
	MetricsPath    string
}

// Provider owns the tracer and meter providers plus the scrape server.
type Provider struct {
	tracerProvider *trace.TracerProvider
	meterProvider  *metric.MeterProvider
	metricsServer  *http.Server
}

// InitTelemetry builds the enabled telemetry halves and installs them as the
// global OTel providers. Either half may be off; a fully disabled config
// yields a Provider that is safe to shut down.
func InitTelemetry(ctx context.Context, cfg Config) (*Provider, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			"", // inherit the schema URL from Default()
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			semconv.DeploymentEnvironmentName(cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	p := &Provider{}

	if cfg.TracingEnabled {
		tp, err := newTracerProvider(ctx, res, cfg)
		if err != nil {
			return nil, err
		}
		p.tracerProvider = tp
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
	}

	if cfg.MetricsEnabled {
		// A dedicated registry keeps the scrape surface limited to what
		// this process registers.
		registry := prometheus.NewRegistry()
		exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
		if err != nil {
			return nil, fmt.Errorf("prometheus exporter: %w", err)
		}
		p.meterProvider = metric.NewMeterProvider(
			metric.WithResource(res),
			metric.WithReader(exporter),
		)
		otel.SetMeterProvider(p.meterProvider)

		path := cfg.MetricsPath
		if path == "" {
			path = defaultMetricsPath
		}
		mux := http.NewServeMux()
		mux.Handle(path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		p.metricsServer = &http.Server{Addr: cfg.MetricsListen, Handler: mux}
	}

	return p, nil
}

func newTracerProvider(ctx context.Context, res *resource.Resource, cfg Config) (*trace.TracerProvider, error) {
	rate := cfg.SamplingRate
	if rate == 0 {
		rate = 1.0
	}

	tp := trace.NewTracerProvider(
		trace.WithResource(res),
		trace.WithSampler(trace.TraceIDRatioBased(rate)),
	)

	// Without an endpoint spans are still recorded (and sampled) but
	// never leave the process.
	if cfg.OTLPEndpoint != "" {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.OTLPEndpoint)}
		if cfg.OTLPInsecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exporter, err := otlptracehttp.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("otlp exporter: %w", err)
		}
		tp.RegisterSpanProcessor(trace.NewBatchSpanProcessor(exporter))
	}

	return tp, nil
}

// ServeMetrics blocks serving the Prometheus scrape endpoint until Shutdown.
// A no-op when metrics are disabled.
func (p *Provider) ServeMetrics() error {
	if p.metricsServer == nil {
		return nil
	}
	if err := p.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics endpoint: %w", err)
	}
	return nil
}

// MetricsHandler returns the scrape handler, nil when metrics are disabled.
func (p *Provider) MetricsHandler() http.Handler {
	if p.metricsServer == nil {
		return nil
	}
	return p.metricsServer.Handler
}

// Shutdown stops the scrape server and flushes both providers.
func (p *Provider) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error
	if p.metricsServer != nil {
		if err := p.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics endpoint: %w", err))
		}
	}
	if p.tracerProvider != nil {
		if err := p.tracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer provider: %w", err))
		}
	}
	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter provider: %w", err))
		}
	}
	return errors.Join(errs...)
}
