package observability

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestInitTelemetryFullyDisabled(t *testing.T) {
	p, err := InitTelemetry(context.Background(), Config{ServiceName: "medvault_cli"})
	if err != nil {
		t.Fatalf("InitTelemetry failed: %v", err)
	}
	if p.MetricsHandler() != nil {
		t.Error("metrics handler present with metrics disabled")
	}
	if err := p.ServeMetrics(); err != nil {
		t.Errorf("ServeMetrics with metrics disabled: %v", err)
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
}

func TestMetricsEndpointServesScrapePage(t *testing.T) {
	p, err := InitTelemetry(context.Background(), Config{
		ServiceName:    "medvault_cli",
		ServiceVersion: "dev",
		MetricsEnabled: true,
		MetricsListen:  "127.0.0.1:0",
	})
	if err != nil {
		t.Fatalf("InitTelemetry failed: %v", err)
	}
	defer p.Shutdown(context.Background())

	h := p.MetricsHandler()
	if h == nil {
		t.Fatal("metrics enabled but no handler")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("GET /metrics = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "target_info") {
		t.Error("scrape page is missing the target_info resource metric")
	}
}

func TestMetricsPathIsConfigurable(t *testing.T) {
	p, err := InitTelemetry(context.Background(), Config{
		ServiceName:    "medvault_cli",
		MetricsEnabled: true,
		MetricsPath:    "/internal/metrics",
	})
	if err != nil {
		t.Fatalf("InitTelemetry failed: %v", err)
	}
	defer p.Shutdown(context.Background())

	rec := httptest.NewRecorder()
	p.MetricsHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/internal/metrics", nil))
	if rec.Code != 200 {
		t.Errorf("GET /internal/metrics = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	p.MetricsHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code == 200 {
		t.Error("default path still served when a custom path is configured")
	}
}
