package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	compileDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "kensaku",
			Name:      "query_compile_duration_seconds",
			Help:      "Time spent compiling one search query",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	compilesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kensaku",
			Name:      "query_compiles_total",
			Help:      "Total number of compiled search queries",
		},
	)

	emptyCompilesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kensaku",
			Name:      "query_compiles_empty_total",
			Help:      "Compiled queries with no usable full-text terms",
		},
	)
)

func init() {
	prometheus.MustRegister(compileDuration)
	prometheus.MustRegister(compilesTotal)
	prometheus.MustRegister(emptyCompilesTotal)
}

// ObserveCompile records one compiler run.
func ObserveCompile(d time.Duration, empty bool) {
	compileDuration.Observe(d.Seconds())
	compilesTotal.Inc()
	if empty {
		emptyCompilesTotal.Inc()
	}
}
