// Package database implements the Database Facade: the single entry
// point orchestrating the Pipeline, Index, Boolean Engine, and Ranker
// that spec.md §6 exposes as the engine's only programmatic contract.
//
// Grounded on the teacher's internal/engine/instance.go (a single
// instance composing settings + InvertedIndex + DocumentStore +
// indexer + searcher). The teacher's multi-named-index management
// (internal/engine/engine.go) and disk persistence
// (internal/engine/persistence.go) are dropped: spec.md's Database
// Facade is one in-memory instance per spec.md §5, and persistence to
// disk is an explicit Non-goal.
package database

import (
	"github.com/go-ir/lexicon/config"
	"github.com/go-ir/lexicon/index"
	"github.com/go-ir/lexicon/internal/boolean"
	"github.com/go-ir/lexicon/internal/lemmatizer"
	"github.com/go-ir/lexicon/internal/pipeline"
	"github.com/go-ir/lexicon/internal/ranker"
)

// Database is the engine's single entry point. The zero value is not
// usable — construct with New.
type Database struct {
	opts     config.DatabaseOptions
	pipeline *pipeline.Pipeline
	index    *index.Index
}

// New creates an empty Database configured by opts. Options are
// validated against DatabaseOptions.Validate before defaults are
// applied; callers that care about conflicts should call Validate
// themselves first, since New does not reject anything (per spec.md
// §7, the engine never fails to construct).
func New(opts config.DatabaseOptions) *Database {
	opts.ApplyDefaults()

	p := pipeline.New(pipeline.Options{
		LowerCase:        true,
		UseStemming:      opts.UseStemming,
		UseLemmatization: opts.UseLemmatization,
		SkipPunctuation:  true,
		SkipNumbers:      true,
		MinTokenLength:   opts.MinTokenLength,
		MaxTokenLength:   opts.MaxTokenLength,
	})

	ix := index.New(index.Options{
		StoreDocuments:    opts.StoreDocuments,
		CompressDocuments: opts.CompressDocuments,
		StoreTitles:       opts.StoreTitles,
	})

	return &Database{opts: opts, pipeline: p, index: ix}
}

// AddDocument normalizes content through the Pipeline, appends it to
// the Index, and returns its newly allocated document id.
func (db *Database) AddDocument(content string) uint32 {
	terms := db.pipeline.Process(content)
	if db.opts.StoreDocuments {
		return db.index.AppendWithText(terms, content)
	}
	return db.index.Append(terms)
}

// AddDocumentWithTitle behaves like AddDocument and additionally
// stores title (subject to StoreTitles).
func (db *Database) AddDocumentWithTitle(content, title string) uint32 {
	docID := db.AddDocument(content)
	db.index.SetTitle(docID, title)
	return docID
}

// Search runs a ranked TF-IDF query and returns the top-k scored
// document ids in descending-score, ascending-id order.
func (db *Database) Search(query string, topK int) []ranker.Hit {
	terms := db.pipeline.Process(query)
	return ranker.Search(db.index, terms, topK)
}

// BooleanQuery evaluates a Boolean expression (spec.md §6's EBNF) and
// returns the matching document ids in ascending order.
func (db *Database) BooleanQuery(expr string) []uint32 {
	return boolean.Evaluate(expr, db.index, db.pipeline.NormalizeTerm)
}

// Document returns the stored original text for docID, if any.
func (db *Database) Document(docID uint32) (string, bool) {
	return db.index.OriginalText(docID)
}

// Title returns the stored title for docID, if any.
func (db *Database) Title(docID uint32) (string, bool) {
	return db.index.Title(docID)
}

// DocumentCount returns the number of documents ever added.
func (db *Database) DocumentCount() int {
	return db.index.DocumentCount()
}

// CompressDocuments reports whether this Database stores original
// text LZW-compressed, so the HTTP facade can attribute codec bytes to
// the right counter without reaching into the index package itself.
func (db *Database) CompressDocuments() bool {
	return db.opts.StoreDocuments && db.opts.CompressDocuments
}

// TermCount returns the number of distinct normalized terms ever
// observed.
func (db *Database) TermCount() int {
	return db.index.TermCount()
}

// Clear drops every document and term and resets the id counter to
// zero.
func (db *Database) Clear() {
	db.index.Clear()
}

// Stats is a read-only aggregate snapshot, assembled purely from
// existing Index operations (SPEC_FULL's supplemented feature #3).
type Stats struct {
	DocumentCount         int
	TermCount             int
	AverageDocumentLength float64
}

// Stats returns the current aggregate snapshot.
func (db *Database) Stats() Stats {
	return Stats{
		DocumentCount:         db.index.DocumentCount(),
		TermCount:             db.index.TermCount(),
		AverageDocumentLength: db.index.AverageDocumentLength(),
	}
}

// Lemmatizer exposes the underlying lemmatizer dictionary so callers
// can extend it via AddWord; nil unless UseLemmatization was set.
func (db *Database) Lemmatizer() *lemmatizer.Lemmatizer {
	return db.pipeline.Lemmatizer()
}
