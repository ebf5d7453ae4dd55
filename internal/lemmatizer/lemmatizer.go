// Package lemmatizer maps inflected English word forms to their base
// form via a constant irregular-form dictionary, falling back to the
// Porter stemmer on a miss.
//
// Grounded on original_source/lib/stemmer/stemmer.h's TLemmatizer
// (dictionary lookup with a stemmer fallback, case-insensitive via
// lowercase-folding, built once and exposing an AddWord extension
// point).
package lemmatizer

import "github.com/go-ir/lexicon/internal/stemmer"

// Lemmatizer looks up inflected forms in a constant dictionary and
// falls back to Porter stemming on a miss. The zero value is not
// usable; construct with New.
type Lemmatizer struct {
	dict map[string]string
}

// New builds a Lemmatizer seeded with the built-in irregular-form
// dictionary. The dictionary is copied so later AddWord calls never
// mutate the package-level defaults.
func New() *Lemmatizer {
	dict := make(map[string]string, len(defaultDictionary))
	for form, lemma := range defaultDictionary {
		dict[form] = lemma
	}
	return &Lemmatizer{dict: dict}
}

// Lemmatize returns the base form of word: a dictionary hit is
// returned verbatim, a miss falls through to stemmer.Stem.
func (l *Lemmatizer) Lemmatize(word string) string {
	lower := toLower(word)
	if lemma, ok := l.dict[lower]; ok {
		return lemma
	}
	return stemmer.Stem(lower)
}

// AddWord extends the dictionary with an additional inflected-form to
// lemma mapping, overriding any existing entry for form.
func (l *Lemmatizer) AddWord(form, lemma string) {
	l.dict[toLower(form)] = toLower(lemma)
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
