// Package ranker implements the TF-IDF scorer: candidate selection by
// posting-list union and top-K ordering by descending score with an
// ascending-document-id tie-break.
//
// Struct shape and the sort/tie-break pattern are grounded on the
// teacher's internal/search/bm25.go (a BM25Calculator wrapping the
// index and document store) and confirmed against
// Adithya-Monish-Kumar-K-Distributed-Search-Analytics-Platform's
// internal/searcher/ranker/ranker.go, whose Rank function sorts by
// score descending then DocID ascending. The scoring formula itself
// is spec.md §4.7's smoothed TF-IDF, not BM25.
package ranker

import (
	"math"
	"sort"
)

// Statistics is the subset of index.Index the ranker needs: term
// frequency, document length, document frequency, posting lists, and
// the corpus-level counts that feed IDF.
type Statistics interface {
	PostingList(term string) []uint32
	DocumentFrequency(term string) int
	TermFrequency(doc uint32, term string) int
	DocumentLength(doc uint32) int
	DocumentCount() int
}

// Hit is one scored search result.
type Hit struct {
	DocID uint32
	Score float64
}

// IDF returns ln((N+1)/(df+1)) + 1, the smoothed form spec.md §4.7
// requires: zero when N = 0 or df = 0, otherwise finite and
// non-negative, and monotonically decreasing in df.
func IDF(n, df int) float64 {
	if n == 0 || df == 0 {
		return 0
	}
	return math.Log(float64(n+1)/float64(df+1)) + 1
}

// TF returns TF(d,t) / DocumentLength(d), zero if the document is
// empty.
func TF(termFreq, docLength int) float64 {
	if docLength == 0 {
		return 0
	}
	return float64(termFreq) / float64(docLength)
}

// Search scores every candidate document — the union of posting lists
// for the (possibly repeated) query terms — and returns the k
// highest-scoring candidates with score > 0, sorted by descending
// score then ascending document id.
func Search(stats Statistics, queryTerms []string, k int) []Hit {
	if len(queryTerms) == 0 {
		return nil
	}

	n := stats.DocumentCount()

	candidates := make(map[uint32]struct{})
	for _, t := range queryTerms {
		for _, id := range stats.PostingList(t) {
			candidates[id] = struct{}{}
		}
	}

	scores := make(map[uint32]float64, len(candidates))
	for _, t := range queryTerms {
		idf := IDF(n, stats.DocumentFrequency(t))
		if idf == 0 {
			continue
		}
		for id := range candidates {
			tf := TF(stats.TermFrequency(id, t), stats.DocumentLength(id))
			if tf == 0 {
				continue
			}
			scores[id] += tf * idf
		}
	}

	hits := make([]Hit, 0, len(scores))
	for id, score := range scores {
		if score <= 0 {
			continue
		}
		hits = append(hits, Hit{DocID: id, Score: score})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].DocID < hits[j].DocID
	})

	if k >= 0 && k < len(hits) {
		hits = hits[:k]
	}
	return hits
}
