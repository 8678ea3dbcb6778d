package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector provides application metrics collection
type Collector struct {
	// API Metrics
	APIRequestsTotal   *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec
	APIErrorsTotal     *prometheus.CounterVec

	// Load Metrics
	RowsLoadedTotal    prometheus.Counter
	MalformedRowsTotal prometheus.Counter
	LoadErrorsTotal    *prometheus.CounterVec
	LoadDuration       prometheus.Histogram
	DatasetDays        prometheus.Gauge

	// Report Metrics
	ReportsGeneratedTotal *prometheus.CounterVec
	ReportErrorsTotal     *prometheus.CounterVec
	ReportDuration        *prometheus.HistogramVec
}

// NewCollector registers the application metrics with reg.
// Each process or test passes its own registry so collectors never clash.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		APIRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of API requests by endpoint, method, and status",
			},
			[]string{"endpoint", "method", "status"},
		),

		APIRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "API request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1.0},
			},
			[]string{"endpoint"},
		),

		APIErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_errors_total",
				Help:      "Total number of API errors by type",
			},
			[]string{"error_type", "endpoint"},
		),

		RowsLoadedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rows_loaded_total",
				Help:      "Total number of day records loaded from data sources",
			},
		),

		MalformedRowsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "malformed_rows_total",
				Help:      "Total number of rows rejected for violating the column contract",
			},
		),

		LoadErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "load_errors_total",
				Help:      "Total number of failed loads by error type",
			},
			[]string{"error_type"},
		),

		LoadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "load_duration_seconds",
				Help:      "Duration of data source loads in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
		),

		DatasetDays: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dataset_days",
				Help:      "Number of day records in the most recently loaded dataset",
			},
		),

		ReportsGeneratedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reports_generated_total",
				Help:      "Total number of reports generated by kind",
			},
			[]string{"kind"},
		),

		ReportErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_errors_total",
				Help:      "Total number of failed report generations by kind and error type",
			},
			[]string{"kind", "error_type"},
		),

		ReportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "report_duration_seconds",
				Help:      "Duration of report generation in seconds by kind",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"kind"},
		),
	}
}

// Timer provides timing functionality for operations
type Timer struct {
	start    time.Time
	observer prometheus.Observer
}

// NewTimer creates a new timer
func (c *Collector) NewTimer(observer prometheus.Observer) *Timer {
	return &Timer{
		start:    time.Now(),
		observer: observer,
	}
}

// ObserveDuration records the elapsed time since timer creation
func (t *Timer) ObserveDuration() time.Duration {
	duration := time.Since(t.start)
	if t.observer != nil {
		t.observer.Observe(duration.Seconds())
	}
	return duration
}

// RecordAPIRequest increments API request counter
func (c *Collector) RecordAPIRequest(endpoint, method, status string) {
	c.APIRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
}

// RecordAPIError increments API error counter
func (c *Collector) RecordAPIError(errorType, endpoint string) {
	c.APIErrorsTotal.WithLabelValues(errorType, endpoint).Inc()
}

// RecordLoad records a successful load of rows day records
func (c *Collector) RecordLoad(rows int) {
	c.RowsLoadedTotal.Add(float64(rows))
	c.DatasetDays.Set(float64(rows))
}

// RecordLoadError increments the load error counter
func (c *Collector) RecordLoadError(errorType string) {
	c.LoadErrorsTotal.WithLabelValues(errorType).Inc()
	if errorType == "malformed_row" {
		c.MalformedRowsTotal.Inc()
	}
}

// RecordReport increments the generated report counter for kind
func (c *Collector) RecordReport(kind string) {
	c.ReportsGeneratedTotal.WithLabelValues(kind).Inc()
}

// RecordReportError increments the report error counter
func (c *Collector) RecordReportError(kind, errorType string) {
	c.ReportErrorsTotal.WithLabelValues(kind, errorType).Inc()
}
