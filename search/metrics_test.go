package search

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/poiesic/nyaya/core"
)

func TestMetricsMonitorFinish(t *testing.T) {
	monitor := NewMetricsMonitor()

	before := testutil.ToFloat64(searchesTotal.WithLabelValues(string(core.SearchTypeHybrid)))
	beforeKeyword := testutil.ToFloat64(searchesTotal.WithLabelValues(string(core.SearchTypeKeyword)))

	monitor.Finish([]*core.SearchResult{
		{Document: actDoc("d1", "a", nil), FinalScore: 0.9, SearchType: core.SearchTypeHybrid},
		{Document: actDoc("d2", "b", nil), FinalScore: 0.5, SearchType: core.SearchTypeHybrid},
		{Document: actDoc("d3", "c", nil), FinalScore: 0.3, SearchType: core.SearchTypeKeyword},
	})

	// One increment per distinct search type, not per result.
	assert.Equal(t, before+1, testutil.ToFloat64(searchesTotal.WithLabelValues(string(core.SearchTypeHybrid))))
	assert.Equal(t, beforeKeyword+1, testutil.ToFloat64(searchesTotal.WithLabelValues(string(core.SearchTypeKeyword))))
}

func TestMetricsMonitorEmptyResults(t *testing.T) {
	monitor := NewMetricsMonitor()

	before := testutil.CollectAndCount(searchResults)
	monitor.Finish(nil)
	// The results histogram records the empty search; no type counter moves.
	assert.Equal(t, before, testutil.CollectAndCount(searchResults))
}

func TestRegisterMetricsIdempotent(t *testing.T) {
	RegisterMetrics()
	assert.NotPanics(t, RegisterMetrics)
}
