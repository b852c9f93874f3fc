// Package metrics exposes Prometheus instrumentation for the news data layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RefreshTotal counts cache refreshes by outcome ("success"/"failure").
	RefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsapp_refresh_total",
		Help: "Number of cache refreshes against the remote API, by outcome.",
	}, []string{"outcome"})

	// RefreshDuration observes how long one refresh takes end to end.
	RefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "newsapp_refresh_duration_seconds",
		Help:    "Duration of one cache refresh including the write-through.",
		Buckets: prometheus.DefBuckets,
	})

	// NewsUpserted counts news items written through to the local cache.
	NewsUpserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "newsapp_news_upserted_total",
		Help: "Number of news items written to the local cache by refreshes.",
	})
)
