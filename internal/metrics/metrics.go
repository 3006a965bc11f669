package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Error classes used as the "class" label on CycleErrors.
const (
	ClassTransport      = "transport"
	ClassEmptyWatchlist = "empty_watchlist"
	ClassOther          = "other"
)

// Collectors holds all Prometheus metrics for the refresh pipeline.
type Collectors struct {
	CyclesTotal   prometheus.Counter
	CycleErrors   *prometheus.CounterVec // label: class
	TicksSkipped  prometheus.Counter
	FetchDuration prometheus.Histogram
	QuotesParsed  prometheus.Counter
	QuotesMissing prometheus.Counter
	Instruments   prometheus.Gauge
}

// New registers all collectors on reg and returns them.
func New(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)
	return &Collectors{
		CyclesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "ticker_refresh_cycles_total",
			Help: "Completed refresh cycles, successful or failed.",
		}),
		CycleErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ticker_refresh_errors_total",
			Help: "Failed refresh cycles by error class.",
		}, []string{"class"}),
		TicksSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "ticker_ticks_skipped_total",
			Help: "Scheduler ticks skipped because a fetch was still in flight.",
		}),
		FetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ticker_fetch_duration_seconds",
			Help:    "Quote feed fetch+parse duration.",
			Buckets: prometheus.DefBuckets,
		}),
		QuotesParsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "ticker_quotes_parsed_total",
			Help: "Well-formed quote lines decoded from the feed.",
		}),
		QuotesMissing: factory.NewCounter(prometheus.CounterOpts{
			Name: "ticker_quotes_missing_total",
			Help: "Requested codes absent or malformed in the feed response.",
		}),
		Instruments: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ticker_instruments_watched",
			Help: "Instruments in the currently displayed subset.",
		}),
	}
}

// Handler serves the registry over HTTP.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
