// Package metrics exposes the pipeline's Prometheus instruments. The
// serve command publishes them on /metrics; collect and process runs
// update them whether or not a scraper is attached.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ArticlesFetched = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsdesk",
		Name:      "articles_fetched_total",
		Help:      "Articles pulled from RSS sources, by outcome",
	}, []string{"outcome"})

	DuplicatesDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsdesk",
		Name:      "duplicates_dropped_total",
		Help:      "Articles removed during deduplication, by stage",
	}, []string{"stage"})

	ClustersFormed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "newsdesk",
		Name:      "clusters_formed_total",
		Help:      "Article clusters produced by the grouping pass",
	})

	EventsSynthesized = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsdesk",
		Name:      "events_synthesized_total",
		Help:      "Events synthesized from clusters, by market",
	}, []string{"market"})

	PipelineDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "newsdesk",
		Name:      "pipeline_duration_seconds",
		Help:      "Wall time of one full collect-and-process pass",
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
	})
)

func init() {
	prometheus.MustRegister(
		ArticlesFetched,
		DuplicatesDropped,
		ClustersFormed,
		EventsSynthesized,
		PipelineDuration,
	)
}
