package search

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/poiesic/nyaya/core"
)

// Search Prometheus metrics.
var (
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nyaya",
			Name:      "searches_total",
			Help:      "Total number of searches by result search type",
		},
		[]string{"search_type"},
	)

	searchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "nyaya",
			Name:      "search_results_count",
			Help:      "Number of results returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	searchTopScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "nyaya",
			Name:      "search_top_score",
			Help:      "Final score of the top-ranked result per search",
			Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.8, 1.0, 1.5},
		},
	)
)

var metricsRegistered bool

// RegisterMetrics registers the search Prometheus metrics.
// Must be called once from main.
func RegisterMetrics() {
	if metricsRegistered {
		return
	}
	prometheus.MustRegister(searchesTotal, searchResults, searchTopScore)
	metricsRegistered = true
}

// MetricsMonitor is a Monitor that records Prometheus metrics for every
// search. Call RegisterMetrics before use.
type MetricsMonitor struct{}

var _ Monitor = (*MetricsMonitor)(nil)

// NewMetricsMonitor creates a metrics-recording monitor.
func NewMetricsMonitor() *MetricsMonitor {
	return &MetricsMonitor{}
}

func (m *MetricsMonitor) Start(_ string)                             {}
func (m *MetricsMonitor) AfterSemanticSearch(_ []*core.SearchResult) {}
func (m *MetricsMonitor) AfterKeywordSearch(_ []*core.SearchResult)  {}
func (m *MetricsMonitor) AfterMerge(_ []*core.SearchResult)          {}
func (m *MetricsMonitor) AfterMetadataFilter(_ []*core.SearchResult) {}
func (m *MetricsMonitor) AfterScoring(_ []*core.SearchResult)        {}
func (m *MetricsMonitor) AfterRerank(_ []*core.SearchResult)         {}

func (m *MetricsMonitor) Finish(results []*core.SearchResult) {
	searchResults.Observe(float64(len(results)))
	if len(results) > 0 {
		searchTopScore.Observe(results[0].FinalScore)
	}

	seen := make(map[core.SearchType]bool)
	for _, r := range results {
		if !seen[r.SearchType] {
			seen[r.SearchType] = true
			searchesTotal.WithLabelValues(string(r.SearchType)).Inc()
		}
	}
}
