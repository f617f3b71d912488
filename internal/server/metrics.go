package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry      *prometheus.Registry
	requests      *prometheus.CounterVec
	gamesSaved    prometheus.Counter
	statsDuration prometheus.Histogram
	liveClients   prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dartsleague_http_requests_total",
			Help: "HTTP requests by route pattern and status code.",
		}, []string{"route", "code"}),
		gamesSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dartsleague_games_saved_total",
			Help: "Game records saved since start.",
		}),
		statsDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dartsleague_stats_compute_seconds",
			Help:    "Time spent deriving player statistics.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		liveClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dartsleague_live_clients",
			Help: "Connected live-feed clients.",
		}),
	}
	m.registry.MustRegister(
		m.requests,
		m.gamesSaved,
		m.statsDuration,
		m.liveClients,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
