package search

import (
	"sync"
	"time"

	"github.com/poiesic/nyaya/core"
)

// historyCap bounds the in-memory search log; oldest entries are evicted
// first.
const historyCap = 1000

// HistoryRecord is a compact summary of one search call.
type HistoryRecord struct {
	Query       string
	Timestamp   time.Time
	ResultCount int
	TopScore    float64
	SearchTypes []core.SearchType
}

// historyLog is a FIFO log of recent searches, safe for concurrent use.
type historyLog struct {
	mu      sync.Mutex
	entries []HistoryRecord
}

func newHistoryLog() *historyLog {
	return &historyLog{}
}

func (h *historyLog) append(rec HistoryRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, rec)
	if len(h.entries) > historyCap {
		h.entries = h.entries[len(h.entries)-historyCap:]
	}
}

func (h *historyLog) snapshot() []HistoryRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]HistoryRecord, len(h.entries))
	copy(out, h.entries)
	return out
}

// Analytics summarizes the recent search history.
type Analytics struct {
	TotalSearches   int
	AvgResultCount  float64
	AvgTopScore     float64
	SearchTypeCount map[core.SearchType]int
	Recent          []HistoryRecord
}

// Analytics summarizes the engine's capped search history: totals, averages,
// search-type distribution, and the last 10 searches (most recent last).
func (e *Engine) Analytics() Analytics {
	entries := e.history.snapshot()

	a := Analytics{
		TotalSearches:   len(entries),
		SearchTypeCount: make(map[core.SearchType]int),
	}
	if len(entries) == 0 {
		return a
	}

	var sumCount int
	var sumTop float64
	for _, rec := range entries {
		sumCount += rec.ResultCount
		sumTop += rec.TopScore
		for _, st := range rec.SearchTypes {
			a.SearchTypeCount[st]++
		}
	}
	a.AvgResultCount = float64(sumCount) / float64(len(entries))
	a.AvgTopScore = sumTop / float64(len(entries))

	recent := entries
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	a.Recent = recent

	return a
}
