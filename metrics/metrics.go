// Package metrics owns the Prometheus registry exposed at /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "influencer_crm"

type Metrics struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	workerRuns     *prometheus.CounterVec
	workerDuration *prometheus.HistogramVec

	shipmentChecks *prometheus.CounterVec
	invoiceOCR     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
		workerRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "runs_total",
			Help:      "Total number of background worker runs.",
		}, []string{"worker", "outcome"}),
		workerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "run_duration_seconds",
			Help:      "Duration of background worker runs.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"worker"}),
		shipmentChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shipments",
			Name:      "carrier_checks_total",
			Help:      "Carrier tracking lookups by carrier and outcome.",
		}, []string{"carrier", "outcome"}),
		invoiceOCR: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "invoices",
			Name:      "ocr_total",
			Help:      "Invoices run through OCR by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.workerRuns,
		m.workerDuration,
		m.shipmentChecks,
		m.invoiceOCR,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RequestStarted() { m.httpInFlight.Inc() }

func (m *Metrics) RequestFinished(method, route string, status int, d time.Duration) {
	m.httpInFlight.Dec()
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) WorkerRun(worker string, err error, d time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.workerRuns.WithLabelValues(worker, outcome).Inc()
	m.workerDuration.WithLabelValues(worker).Observe(d.Seconds())
}

// Shipment check outcomes.
const (
	CheckChanged     = "changed"
	CheckUnchanged   = "unchanged"
	CheckFailed      = "failed"
	CheckUnsupported = "unsupported"
)

func (m *Metrics) ShipmentChecked(carrier, outcome string) {
	m.shipmentChecks.WithLabelValues(carrier, outcome).Inc()
}

func (m *Metrics) InvoicesProcessed(processed, failed, skipped int) {
	m.invoiceOCR.WithLabelValues("processed").Add(float64(processed))
	m.invoiceOCR.WithLabelValues("failed").Add(float64(failed))
	m.invoiceOCR.WithLabelValues("skipped").Add(float64(skipped))
}
