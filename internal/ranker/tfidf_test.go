package ranker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeStats is a minimal Statistics backed by per-document term
// counts, independent of the real index package.
type fakeStats struct {
	docs []map[string]int // term -> count, per document
}

func (f *fakeStats) DocumentCount() int { return len(f.docs) }

func (f *fakeStats) DocumentLength(doc uint32) int {
	total := 0
	for _, c := range f.docs[doc] {
		total += c
	}
	return total
}

func (f *fakeStats) TermFrequency(doc uint32, term string) int {
	return f.docs[doc][term]
}

func (f *fakeStats) DocumentFrequency(term string) int {
	df := 0
	for _, d := range f.docs {
		if d[term] > 0 {
			df++
		}
	}
	return df
}

func (f *fakeStats) PostingList(term string) []uint32 {
	var out []uint32
	for id, d := range f.docs {
		if d[term] > 0 {
			out = append(out, uint32(id))
		}
	}
	return out
}

func TestIDFIsMonotonicallyDecreasingInDocumentFrequency(t *testing.T) {
	n := 100
	prev := IDF(n, 1)
	for df := 2; df <= n; df++ {
		cur := IDF(n, df)
		assert.LessOrEqual(t, cur, prev, "idf must not increase as df grows")
		prev = cur
	}
}

func TestIDFZeroOnEmptyCorpusOrAbsentTerm(t *testing.T) {
	assert.Equal(t, 0.0, IDF(0, 0))
	assert.Equal(t, 0.0, IDF(10, 0))
}

func TestSearchOrderingByScore(t *testing.T) {
	stats := &fakeStats{docs: []map[string]int{
		{"python": 3},
		{"python": 1, "java": 1, "cpp": 1},
	}}

	hits := Search(stats, []string{"python"}, 10)
	assert.Len(t, hits, 2)
	assert.Equal(t, uint32(0), hits[0].DocID, "doc 0 has higher python density and should rank first")
	assert.Greater(t, hits[0].Score, hits[1].Score)
}

func TestSearchEmptyQueryReturnsEmpty(t *testing.T) {
	stats := &fakeStats{docs: []map[string]int{{"a": 1}}}
	assert.Empty(t, Search(stats, nil, 10))
}

func TestSearchRespectsKCap(t *testing.T) {
	stats := &fakeStats{docs: []map[string]int{
		{"x": 1}, {"x": 1}, {"x": 1},
	}}
	hits := Search(stats, []string{"x"}, 2)
	assert.Len(t, hits, 2)

	all := Search(stats, []string{"x"}, 100)
	assert.Len(t, all, 3, "k exceeding candidate count returns all candidates")
}

func TestSearchDiscardsNonPositiveScores(t *testing.T) {
	stats := &fakeStats{docs: []map[string]int{{"a": 1}}}
	hits := Search(stats, []string{"absent-term"}, 10)
	assert.Empty(t, hits)
}
