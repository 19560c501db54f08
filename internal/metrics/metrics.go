package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/model"
)

// Metrics collects the agent's Prometheus series. A nil *Metrics is valid and
// turns every method into a no-op, so components can treat it as optional.
type Metrics struct {
	acquisitionsTotal  *prometheus.CounterVec
	acquisitionSeconds prometheus.Histogram
	temperature        prometheus.Gauge
	humidity           prometheus.Gauge
	readingAge         prometheus.Gauge
	publishTotal       *prometheus.CounterVec
	httpRequestsTotal  *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		acquisitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sensor_acquisitions_total",
			Help: "Total acquisition attempts by result.",
		}, []string{"result"}),
		acquisitionSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sensor_acquisition_duration_seconds",
			Help:    "Histogram of sensor acquisition durations.",
			Buckets: prometheus.DefBuckets,
		}),
		temperature: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sensor_temperature_celsius",
			Help: "Last successfully acquired temperature.",
		}),
		humidity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sensor_humidity_percent",
			Help: "Last successfully acquired relative humidity.",
		}),
		readingAge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sensor_reading_age_seconds",
			Help: "Age of the cached reading at the last acquisition attempt.",
		}),
		publishTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "telemetry_publish_total",
			Help: "Total telemetry publishes by sink and result.",
		}, []string{"sink", "result"}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}

	prometheus.MustRegister(
		m.acquisitionsTotal,
		m.acquisitionSeconds,
		m.temperature,
		m.humidity,
		m.readingAge,
		m.publishTotal,
		m.httpRequestsTotal,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) AcquisitionSucceeded(r model.Reading, took time.Duration) {
	if m == nil {
		return
	}
	m.acquisitionsTotal.WithLabelValues("ok").Inc()
	m.acquisitionSeconds.Observe(took.Seconds())
	m.temperature.Set(r.Temperature)
	m.humidity.Set(r.Humidity)
}

func (m *Metrics) AcquisitionFailed(took time.Duration) {
	if m == nil {
		return
	}
	m.acquisitionsTotal.WithLabelValues("error").Inc()
	m.acquisitionSeconds.Observe(took.Seconds())
}

func (m *Metrics) SetReadingAge(age time.Duration) {
	if m == nil {
		return
	}
	m.readingAge.Set(age.Seconds())
}

func (m *Metrics) PublishResult(sink string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.publishTotal.WithLabelValues(sink, result).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// WrapHandler records request counts and durations for one route.
func (m *Metrics) WrapHandler(route string, next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the Prometheus exposition endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}
