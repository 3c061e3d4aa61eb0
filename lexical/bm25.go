package lexical

import "math"

// BM25 parameters.
const (
	bm25K1 = 1.5
	bm25B  = 0.75
)

// bm25Model holds precomputed term statistics for a fixed tokenized corpus.
type bm25Model struct {
	termFreqs []map[string]int
	idf       map[string]float64
	docLens   []int
	avgDocLen float64
}

// newBM25Model builds the ranking model over a tokenized corpus.
// Returns nil for an empty corpus.
//
// IDF uses the smoothed form ln(1 + (N-df+0.5)/(df+0.5)), which stays
// positive even for terms present in most documents; the corpus here can be
// as small as a handful of sections, where the unsmoothed Okapi IDF
// degenerates to zero.
func newBM25Model(corpus [][]string) *bm25Model {
	if len(corpus) == 0 {
		return nil
	}

	m := &bm25Model{
		termFreqs: make([]map[string]int, len(corpus)),
		idf:       make(map[string]float64),
		docLens:   make([]int, len(corpus)),
	}

	docFreqs := make(map[string]int)
	totalLen := 0
	for i, tokens := range corpus {
		freqs := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			freqs[tok]++
		}
		for tok := range freqs {
			docFreqs[tok]++
		}
		m.termFreqs[i] = freqs
		m.docLens[i] = len(tokens)
		totalLen += len(tokens)
	}
	m.avgDocLen = float64(totalLen) / float64(len(corpus))

	n := float64(len(corpus))
	for term, df := range docFreqs {
		m.idf[term] = math.Log(1 + (n-float64(df)+0.5)/(float64(df)+0.5))
	}

	return m
}

// Scores computes a BM25 relevance score for the query against every
// document in the corpus, indexed by corpus position.
func (m *bm25Model) Scores(query []string) []float64 {
	scores := make([]float64, len(m.termFreqs))
	for _, term := range query {
		idf, ok := m.idf[term]
		if !ok {
			continue
		}
		for i, freqs := range m.termFreqs {
			tf := float64(freqs[term])
			if tf == 0 {
				continue
			}
			norm := 1 - bm25B + bm25B*float64(m.docLens[i])/m.avgDocLen
			scores[i] += idf * tf * (bm25K1 + 1) / (tf + bm25K1*norm)
		}
	}
	return scores
}
