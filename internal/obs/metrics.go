package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ParseFailures       *prometheus.CounterVec
	Selections          *prometheus.CounterVec
	CatalogHotels       prometheus.GaugeFunc
	Registry            *prometheus.Registry
}

// NewMetrics creates the collectors and registers them on p. catalogSize is
// sampled on every scrape.
func NewMetrics(p *prometheus.Registry, catalogSize func() int) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hotelres_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hotelres_http_request_duration_seconds",
				Help:    "HTTP request latencies",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		ParseFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hotelres_parse_failures_total",
			Help: "Reservation requests rejected by the parser",
		}, []string{"kind"}),
		Selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hotelres_selections_total",
			Help: "Cheapest hotel selections by winning hotel",
		}, []string{"hotel"}),
		CatalogHotels: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "hotelres_catalog_hotels",
			Help: "Hotels currently in the catalog",
		}, func() float64 { return float64(catalogSize()) }),
		Registry: p,
	}

	p.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ParseFailures,
		m.Selections,
		m.CatalogHotels,
	)

	return m
}

func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

func (m *Metrics) IncParseFailure(kind string) { m.ParseFailures.WithLabelValues(kind).Inc() }

func (m *Metrics) IncSelection(hotel string) { m.Selections.WithLabelValues(hotel).Inc() }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
