package search

import "github.com/poiesic/nyaya/core"

// Monitor provides hooks to observe the fusion pipeline.
// Implement this interface to track intermediate steps and results during search.
type Monitor interface {
	Start(query string)
	AfterSemanticSearch(results []*core.SearchResult)
	AfterKeywordSearch(results []*core.SearchResult)
	AfterMerge(results []*core.SearchResult)
	AfterMetadataFilter(results []*core.SearchResult)
	AfterScoring(results []*core.SearchResult)
	AfterRerank(results []*core.SearchResult)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                             {}
func (n *noopMonitor) AfterSemanticSearch(_ []*core.SearchResult) {}
func (n *noopMonitor) AfterKeywordSearch(_ []*core.SearchResult)  {}
func (n *noopMonitor) AfterMerge(_ []*core.SearchResult)          {}
func (n *noopMonitor) AfterMetadataFilter(_ []*core.SearchResult) {}
func (n *noopMonitor) AfterScoring(_ []*core.SearchResult)        {}
func (n *noopMonitor) AfterRerank(_ []*core.SearchResult)         {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)              {}
