package attrs

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/domattr/pkg/dom"
)

func TestApplicator_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(MetricsConfig{Registry: reg})
	a := New(Options{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: m,
		Tracer:  noop.NewTracerProvider().Tracer("test"),
	})

	el := dom.NewElement("input")
	ctx := context.Background()
	if _, err := a.ApplyContext(ctx, el, Map{{"id", "a"}, {"value", "v"}}, false); err != nil {
		t.Fatal(err)
	}
	if _, err := a.ApplyContext(ctx, el, Map{{"id", "a"}, {"value", "v"}}, false); err != nil {
		t.Fatal(err)
	}
	if _, err := a.ApplyContext(ctx, el, Map{{"style", []string{"x"}}}, false); err == nil {
		t.Fatal("want error")
	}

	if got := testutil.ToFloat64(m.applyTotal.WithLabelValues("mutated")); got != 1 {
		t.Errorf("apply_total{mutated} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.applyTotal.WithLabelValues("unchanged")); got != 1 {
		t.Errorf("apply_total{unchanged} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.errorsTotal.WithLabelValues("E200")); got != 1 {
		t.Errorf("apply_errors_total{E200} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.writesTotal.WithLabelValues("set")); got != 2 {
		t.Errorf("writes_total{set} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.writesTotal.WithLabelValues("prop")); got != 1 {
		t.Errorf("writes_total{prop} = %v, want 1", got)
	}
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	m.write(opSet)
	m.result(true, "", 0.1)
}
