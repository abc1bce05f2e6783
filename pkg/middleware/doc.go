// Package middleware provides HTTP middleware for the domattr service.
//
// This package includes:
//   - OpenTelemetry request tracing
//   - Prometheus request metrics
//
// Both are chi-compatible (func(http.Handler) http.Handler) and label
// requests by route pattern rather than raw path, which keeps metric
// cardinality bounded.
//
// # OpenTelemetry Middleware
//
// OpenTelemetry starts one server span per request. Incoming W3C trace
// context is extracted with the global propagator, so spans started by the
// attribute engine join the caller's trace.
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("domattr"),
//	    middleware.WithFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// # Prometheus Metrics
//
// Prometheus records:
//   - domattr_http_requests_total: requests by route, method and status
//   - domattr_http_request_duration_seconds: latency by route
//
//	reg := prometheus.NewRegistry()
//	r.Use(middleware.Prometheus(middleware.WithRegistry(reg)))
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package middleware
