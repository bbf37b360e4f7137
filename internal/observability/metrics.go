package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the batch pipeline.
type Metrics struct {
	YearsLoaded      prometheus.Counter
	YearLoadFailures prometheus.Counter
	RecordsLoaded    prometheus.Counter
	LoadDuration     prometheus.Histogram

	SummariesBuilt prometheus.Counter

	// Plot metrics.
	PlotsRendered prometheus.Counter
	PointsMissing prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		YearsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars_summary",
			Name:      "years_loaded_total",
			Help:      "Total year files loaded successfully.",
		}),
		YearLoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars_summary",
			Name:      "year_load_failures_total",
			Help:      "Total year load attempts that produced no data.",
		}),
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars_summary",
			Name:      "records_loaded_total",
			Help:      "Total accident rows parsed from year files.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fars_summary",
			Name:      "load_duration_seconds",
			Help:      "Duration of a single year-file read and parse.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SummariesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars_summary",
			Name:      "summaries_built_total",
			Help:      "Total summary matrices computed.",
		}),
		PlotsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars_summary",
			Name:      "plots_rendered_total",
			Help:      "Total state maps rendered.",
		}),
		PointsMissing: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars_summary",
			Name:      "plot_points_missing_total",
			Help:      "Total plotted rows whose coordinates were unknown sentinels.",
		}),
	}

	prometheus.MustRegister(
		m.YearsLoaded,
		m.YearLoadFailures,
		m.RecordsLoaded,
		m.LoadDuration,
		m.SummariesBuilt,
		m.PlotsRendered,
		m.PointsMissing,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		YearsLoaded:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars_summary", Name: "years_loaded_total"}),
		YearLoadFailures: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars_summary", Name: "year_load_failures_total"}),
		RecordsLoaded:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars_summary", Name: "records_loaded_total"}),
		LoadDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "fars_summary", Name: "load_duration_seconds"}),
		SummariesBuilt:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars_summary", Name: "summaries_built_total"}),
		PlotsRendered:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars_summary", Name: "plots_rendered_total"}),
		PointsMissing:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars_summary", Name: "plot_points_missing_total"}),
	}
}
