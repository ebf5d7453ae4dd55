// Package metrics defines the Prometheus collectors exposed by the
// HTTP facade (api/) and the /metrics scrape endpoint.
//
// Grounded on
// Adithya-Monish-Kumar-K-Distributed-Search-Analytics-Platform's
// pkg/metrics/metrics.go (a Metrics struct bundling CounterVec,
// HistogramVec, and Gauge collectors, registered once via
// prometheus.MustRegister and scraped through promhttp.Handler). Per
// SPEC_FULL.md's AMBIENT STACK section, no metrics call may appear
// inside the core engine packages (internal/tokenizer, internal/stemmer,
// internal/lemmatizer, internal/pipeline, internal/boolean,
// internal/ranker, internal/codec, index/) — this package is wired
// only from api/.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors tracked across the lifetime of one
// Database instance. Each Metrics owns its own prometheus.Registry
// rather than registering against the global default registerer, so
// that a process (or a test) can construct more than one Database
// without a duplicate-registration panic.
type Metrics struct {
	registry *prometheus.Registry

	DocumentsIngested   prometheus.Counter
	BytesCompressed     prometheus.Counter
	BytesDecompressed   prometheus.Counter
	SearchLatency       *prometheus.HistogramVec
	TermCount           prometheus.Gauge
	BooleanQueriesTotal prometheus.Counter
}

// New creates a fresh registry and registers every collector against
// it.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		DocumentsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lexicon_documents_ingested_total",
			Help: "Total documents added to the index.",
		}),
		BytesCompressed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lexicon_codec_bytes_compressed_total",
			Help: "Total input bytes fed to the LZW codec on ingest.",
		}),
		BytesDecompressed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lexicon_codec_bytes_decompressed_total",
			Help: "Total output bytes produced by LZW decompression on document reads.",
		}),
		SearchLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lexicon_search_latency_seconds",
				Help:    "Query latency in seconds, by query kind (tfidf, boolean).",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"kind"},
		),
		TermCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lexicon_term_count",
			Help: "Number of distinct normalized terms currently in the index.",
		}),
		BooleanQueriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lexicon_boolean_queries_total",
			Help: "Total Boolean queries evaluated.",
		}),
	}

	m.registry.MustRegister(
		m.DocumentsIngested,
		m.BytesCompressed,
		m.BytesDecompressed,
		m.SearchLatency,
		m.TermCount,
		m.BooleanQueriesTotal,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler serving m's
// registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
