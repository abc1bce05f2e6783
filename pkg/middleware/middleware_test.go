package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func newRouter(mw ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(mw...)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/fail", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	r.Get("/silent", func(w http.ResponseWriter, r *http.Request) {})
	return r
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestPrometheus_RecordsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := newRouter(Prometheus(WithRegistry(reg), WithNamespace("test")))

	serve(r, http.MethodGet, "/items/1")
	serve(r, http.MethodGet, "/items/2")
	serve(r, http.MethodGet, "/fail")
	serve(r, http.MethodGet, "/silent")

	expected := `
# HELP test_http_requests_total Total number of HTTP requests by route, method and status
# TYPE test_http_requests_total counter
test_http_requests_total{method="GET",route="/fail",status="500"} 1
test_http_requests_total{method="GET",route="/items/{id}",status="200"} 2
test_http_requests_total{method="GET",route="/silent",status="200"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_http_requests_total"); err != nil {
		t.Error(err)
	}
	if n, err := testutil.GatherAndCount(reg, "test_http_request_duration_seconds"); err != nil || n != 3 {
		t.Errorf("duration series = %d (%v), want 3", n, err)
	}
}

func TestPrometheus_InFlightReturnsToZero(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := newRouter(Prometheus(WithRegistry(reg)))
	serve(r, http.MethodGet, "/items/1")

	expected := `
# HELP domattr_http_requests_in_flight Number of HTTP requests being served
# TYPE domattr_http_requests_in_flight gauge
domattr_http_requests_in_flight 0
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "domattr_http_requests_in_flight"); err != nil {
		t.Error(err)
	}
}

func TestPrometheus_Unmatched(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := newRouter(Prometheus(WithRegistry(reg), WithNamespace("u")))
	if rec := serve(r, http.MethodGet, "/nope"); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	expected := `
# HELP u_http_requests_total Total number of HTTP requests by route, method and status
# TYPE u_http_requests_total counter
u_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "u_http_requests_total"); err != nil {
		t.Error(err)
	}
}

func TestOpenTelemetry_ExtractsParent(t *testing.T) {
	const traceparent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

	var got trace.SpanContext
	r := chi.NewRouter()
	r.Use(OpenTelemetry(
		WithTracer(noop.NewTracerProvider().Tracer("test")),
		WithPropagator(propagation.TraceContext{}),
	))
	r.Get("/x", func(w http.ResponseWriter, r *http.Request) {
		got = trace.SpanContextFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("traceparent", traceparent)
	r.ServeHTTP(httptest.NewRecorder(), req)

	if got.TraceID().String() != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace id = %s, want propagated id", got.TraceID())
	}
}

func TestOpenTelemetry_Filter(t *testing.T) {
	var calls int
	r := newRouter(
		chimw.RequestID,
		OpenTelemetry(
			WithTracer(noop.NewTracerProvider().Tracer("test")),
			WithFilter(func(r *http.Request) bool {
				calls++
				return r.URL.Path != "/silent"
			}),
		),
	)

	if rec := serve(r, http.MethodGet, "/silent"); rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if rec := serve(r, http.MethodGet, "/items/7"); rec.Body.String() != "ok" {
		t.Errorf("body = %q", rec.Body.String())
	}
	if calls != 2 {
		t.Errorf("filter calls = %d, want 2", calls)
	}
}
