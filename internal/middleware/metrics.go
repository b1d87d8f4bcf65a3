package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"blogapi/internal/metrics"
)

// Metrics records request count and latency labelled by the matched route
// template. It must be installed with mux.Router.Use so the route is known.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := newStatusRW(w)

		next.ServeHTTP(sw, r)

		route := "unknown"
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		metrics.RecordRequest(r.Method, route, sw.status, time.Since(start).Seconds())
	})
}
