package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Table lookup outcomes.
const (
	LookupHit   = "hit"
	LookupLoad  = "load"
	LookupError = "error"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bufrkit",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bufrkit",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	tableLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bufrkit",
			Subsystem: "tables",
			Name:      "lookups_total",
			Help:      "Table dictionary lookups by outcome.",
		},
		[]string{"dictionary", "result"},
	)
	tableLoadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bufrkit",
			Subsystem: "tables",
			Name:      "load_duration_seconds",
			Help:      "Time spent parsing and merging table files.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"dictionary"},
	)
	tableRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "bufrkit",
			Subsystem: "tables",
			Name:      "rows",
			Help:      "Rows held by a published dictionary.",
		},
		[]string{"key"},
	)
	descriptorResolves = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bufrkit",
			Subsystem: "descriptor",
			Name:      "resolves_total",
			Help:      "Descriptor resolutions by category and success.",
		},
		[]string{"category", "success"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,
			tableLookups,
			tableLoadDuration,
			tableRows,
			descriptorResolves,
		)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

func RecordTableLookup(dictionary, result string) {
	RegisterMetrics()
	tableLookups.WithLabelValues(dictionary, result).Inc()
}

func RecordTableLoad(dictionary, key string, rows int, duration time.Duration) {
	RegisterMetrics()
	tableLoadDuration.WithLabelValues(dictionary).Observe(duration.Seconds())
	tableRows.WithLabelValues(key).Set(float64(rows))
}

func RecordDescriptorResolve(category int, success bool) {
	RegisterMetrics()
	descriptorResolves.WithLabelValues(strconv.Itoa(category), strconv.FormatBool(success)).Inc()
}
