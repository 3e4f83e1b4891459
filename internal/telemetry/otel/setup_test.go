package otel

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestParseTarget(t *testing.T) {
	testCases := []struct {
		name         string
		endpoint     string
		override     bool
		wantTarget   string
		wantInsecure bool
		wantErr      bool
	}{
		{"bare host:port", "localhost:4317", false, "localhost:4317", true, false},
		{"http scheme", "http://localhost:4317", false, "localhost:4317", true, false},
		{"https scheme", "https://collector:4317", false, "collector:4317", false, false},
		{"https with override", "https://collector:4317", true, "collector:4317", true, false},
		{"path dropped", "http://localhost:4317/v1/traces", false, "localhost:4317", true, false},
		{"missing host", "http://", false, "", false, true},
		{"unparseable", "http://[invalid", false, "", false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			target, insecure, err := parseTarget(tc.endpoint, tc.override)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseTarget(%q) should return error", tc.endpoint)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTarget(%q): %v", tc.endpoint, err)
			}
			if target != tc.wantTarget {
				t.Errorf("target = %q, want %q", target, tc.wantTarget)
			}
			if insecure != tc.wantInsecure {
				t.Errorf("insecure = %v, want %v", insecure, tc.wantInsecure)
			}
		})
	}
}

func TestNewProviders_EmptyEndpointIsNoop(t *testing.T) {
	ctx := context.Background()
	providers, err := NewProviders(ctx, "   ", "test-service", false)
	if err != nil {
		t.Fatalf("NewProviders: %v", err)
	}
	if providers.TracerProvider == nil || providers.MeterProvider == nil || providers.LoggerProvider == nil {
		t.Fatal("no-op providers should still be non-nil")
	}
	// Shutdown is a no-op and safe to call repeatedly.
	if err := providers.Shutdown(ctx); err != nil {
		t.Errorf("first shutdown: %v", err)
	}
	if err := providers.Shutdown(ctx); err != nil {
		t.Errorf("second shutdown: %v", err)
	}
}

func TestNewProviders_InvalidEndpoint(t *testing.T) {
	if _, err := NewProviders(context.Background(), "http://", "test-service", false); err == nil {
		t.Fatal("NewProviders with hostless endpoint should return error")
	}
}

func TestSetGlobal(t *testing.T) {
	providers, err := NewProviders(context.Background(), "", "test-service", false)
	if err != nil {
		t.Fatalf("NewProviders: %v", err)
	}

	oldTracer := otel.GetTracerProvider()
	oldMeter := otel.GetMeterProvider()
	defer func() {
		otel.SetTracerProvider(oldTracer)
		otel.SetMeterProvider(oldMeter)
	}()

	providers.SetGlobal()
	if otel.GetTracerProvider() == oldTracer {
		t.Error("TracerProvider should be replaced")
	}
	if otel.GetMeterProvider() == oldMeter {
		t.Error("MeterProvider should be replaced")
	}
}

func TestSetGlobal_NilFieldsLeaveGlobalsAlone(t *testing.T) {
	ctx := context.Background()
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(ctx) }()

	providers := &Providers{
		TracerProvider: tp,
		Shutdown:       func(context.Context) error { return nil },
	}

	oldTracer := otel.GetTracerProvider()
	oldMeter := otel.GetMeterProvider()
	defer func() {
		otel.SetTracerProvider(oldTracer)
		otel.SetMeterProvider(oldMeter)
	}()

	providers.SetGlobal()
	if otel.GetTracerProvider() == oldTracer {
		t.Error("TracerProvider should be replaced")
	}
	if otel.GetMeterProvider() != oldMeter {
		t.Error("nil MeterProvider should leave the global untouched")
	}
}
