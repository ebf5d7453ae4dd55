// Package pipeline composes the tokenizer with case-folding and either
// the stemmer or the lemmatizer into the canonical text-normalization
// path used for both document ingest and query terms.
//
// Grounded on original_source/lib/index/pipeline.h's TTextPipeline,
// with the field set and defaults taken from spec.md §4.4 (min token
// length 1, not the original's 2).
package pipeline

import (
	"github.com/go-ir/lexicon/internal/lemmatizer"
	"github.com/go-ir/lexicon/internal/stemmer"
	"github.com/go-ir/lexicon/internal/tokenizer"
)

// Options strictly supersets tokenizer.Options with the stemming and
// lemmatization toggles.
type Options struct {
	LowerCase        bool
	UseStemming      bool
	UseLemmatization bool
	SkipPunctuation  bool
	SkipNumbers      bool
	MinTokenLength   int
	MaxTokenLength   int
}

// DefaultOptions matches spec.md §4.4/§4.1's stated defaults: case
// folding on, punctuation/numbers skipped, no stemming or
// lemmatization, token length in [1, 1000].
func DefaultOptions() Options {
	return Options{
		LowerCase:       true,
		SkipPunctuation: true,
		SkipNumbers:     true,
		MinTokenLength:  1,
		MaxTokenLength:  1000,
	}
}

func (o Options) tokenizerOptions() tokenizer.Options {
	return tokenizer.Options{
		LowerCase:       o.LowerCase,
		SkipWhitespace:  true,
		SkipPunctuation: o.SkipPunctuation,
		SkipNumbers:     o.SkipNumbers,
		MinTokenLength:  o.MinTokenLength,
		MaxTokenLength:  o.MaxTokenLength,
	}
}

// Pipeline is a normalization path built once from a fixed set of
// Options. The zero value is not usable — construct with New.
type Pipeline struct {
	opts Options
	lem  *lemmatizer.Lemmatizer
}

// New builds a Pipeline. The lemmatizer dictionary is only constructed
// when UseLemmatization is set.
func New(opts Options) *Pipeline {
	p := &Pipeline{opts: opts}
	if opts.UseLemmatization {
		p.lem = lemmatizer.New()
	}
	return p
}

// Lemmatizer exposes the underlying dictionary so callers can extend
// it via AddWord; nil when lemmatization is disabled.
func (p *Pipeline) Lemmatizer() *lemmatizer.Lemmatizer {
	return p.lem
}

// Process tokenizes text and normalizes each resulting Word token,
// producing the ordered term stream that Index.Append consumes.
func (p *Pipeline) Process(text string) []string {
	tokens := tokenizer.Tokenize(text, p.opts.tokenizerOptions())
	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != tokenizer.Word {
			continue
		}
		terms = append(terms, p.normalize(tok.Text))
	}
	return terms
}

// NormalizeTerm applies the same lower-case + lemma/stem chain to a
// single string as Process applies to each token it emits. A second
// application does not always return its input: Porter stemming can
// shorten its own output again ("agreed" -> "agre" -> "agr"), and a
// dictionary lemma is itself looked up and stemmed on a second pass
// ("analyses" -> "analysis" -> "analysi").
func (p *Pipeline) NormalizeTerm(term string) string {
	return p.normalize(foldCase(term, p.opts.LowerCase))
}

// normalize assumes its input is already case-folded.
func (p *Pipeline) normalize(term string) string {
	switch {
	case p.opts.UseLemmatization:
		return p.lem.Lemmatize(term)
	case p.opts.UseStemming:
		return stemmer.Stem(term)
	default:
		return term
	}
}

func foldCase(s string, lowerCase bool) string {
	if !lowerCase {
		return s
	}
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}
