package database

import (
	"testing"

	"github.com/go-ir/lexicon/config"
)

func TestStemmingEquivalenceScenario(t *testing.T) {
	db := New(config.DatabaseOptions{UseStemming: true, MinTokenLength: 1, MaxTokenLength: 1000})
	db.AddDocument("running swim")
	db.AddDocument("run swimmer")

	if got := db.index.DocumentFrequency("run"); got != 2 {
		t.Errorf("document_frequency(run) = %d, want 2", got)
	}
	// "swimmer" does not reduce to "swim" under the Porter algorithm
	// (m("swimm") = 1 fails step 4's m > 1 guard on the "er" suffix),
	// so each term has a single document rather than colliding.
	if got := db.index.DocumentFrequency("swim"); got != 1 {
		t.Errorf("document_frequency(swim) = %d, want 1", got)
	}
	if got := db.index.DocumentFrequency("swimmer"); got != 1 {
		t.Errorf("document_frequency(swimmer) = %d, want 1", got)
	}
}

func TestLemmaOverrideScenario(t *testing.T) {
	db := New(config.DatabaseOptions{UseLemmatization: true, MinTokenLength: 1, MaxTokenLength: 1000})

	cases := map[string]string{
		"children": "child",
		"were":     "be",
		"analyses": "analysis",
	}
	for form, want := range cases {
		if got := db.pipeline.NormalizeTerm(form); got != want {
			t.Errorf("normalize_term(%q) = %q, want %q", form, got, want)
		}
	}
}

func TestBooleanPrecedenceScenario(t *testing.T) {
	db := New(config.DefaultOptions())
	db.AddDocument("red apple")
	db.AddDocument("green apple")
	db.AddDocument("red banana")

	got := db.BooleanQuery("(red OR green) AND NOT banana")
	want := []uint32{0, 1}
	assertUint32Slice(t, got, want)
}

func TestTFIDFOrderingScenario(t *testing.T) {
	db := New(config.DefaultOptions())
	db.AddDocument("python python python")
	db.AddDocument("python java cpp")

	hits := db.Search("python", 10)
	if len(hits) != 2 {
		t.Fatalf("Search() returned %d hits, want 2", len(hits))
	}
	if hits[0].DocID != 0 {
		t.Errorf("first hit doc id = %d, want 0", hits[0].DocID)
	}
}

func TestBooleanEmptinessScenario(t *testing.T) {
	db := New(config.DefaultOptions())
	db.AddDocument("cat dog")
	db.AddDocument("cat bird")
	db.AddDocument("fish")

	assertUint32Slice(t, db.BooleanQuery("cat AND dog"), []uint32{0})
	assertUint32Slice(t, db.BooleanQuery("fish OR NOT fish"), []uint32{0, 1, 2})
}

func TestClearResetsDatabase(t *testing.T) {
	db := New(config.DefaultOptions())
	db.AddDocument("hello world")
	db.Clear()

	if db.DocumentCount() != 0 {
		t.Errorf("DocumentCount() after Clear = %d, want 0", db.DocumentCount())
	}
	id := db.AddDocument("fresh start")
	if id != 0 {
		t.Errorf("id after Clear = %d, want 0", id)
	}
}

func TestDocumentAndTitleStorage(t *testing.T) {
	db := New(config.DatabaseOptions{StoreDocuments: true, StoreTitles: true, MinTokenLength: 1, MaxTokenLength: 1000})
	id := db.AddDocumentWithTitle("the quick fox", "Fox Poem")

	text, ok := db.Document(id)
	if !ok || text != "the quick fox" {
		t.Errorf("Document() = (%q, %v), want (%q, true)", text, ok, "the quick fox")
	}
	title, ok := db.Title(id)
	if !ok || title != "Fox Poem" {
		t.Errorf("Title() = (%q, %v), want (%q, true)", title, ok, "Fox Poem")
	}
}

func TestStats(t *testing.T) {
	db := New(config.DefaultOptions())
	db.AddDocument("a b")
	db.AddDocument("a b c d")

	stats := db.Stats()
	if stats.DocumentCount != 2 {
		t.Errorf("Stats().DocumentCount = %d, want 2", stats.DocumentCount)
	}
	if stats.AverageDocumentLength != 3 {
		t.Errorf("Stats().AverageDocumentLength = %v, want 3", stats.AverageDocumentLength)
	}
}

func assertUint32Slice(t *testing.T, got, want []uint32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
