package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/metrics"
)

// NewRouter wires the query interface. API routes go through the metrics
// middleware; a nil Metrics leaves them bare.
func NewRouter(h *Handlers, m *metrics.Metrics) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.Index).Methods(http.MethodGet)
	r.Handle("/api/reading", m.WrapHandler("/api/reading", http.HandlerFunc(h.Reading))).Methods(http.MethodGet)
	r.Handle("/api/status", m.WrapHandler("/api/status", http.HandlerFunc(h.Status))).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.Healthz).Methods(http.MethodGet)
	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	return r
}
