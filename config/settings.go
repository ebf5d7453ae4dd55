// Package config provides the programmatic options struct for
// Database.create, plus an optional YAML-file loading convenience.
//
// Restructured from the teacher's config/settings.go (validate +
// ApplyDefaults shape) for the much smaller option set spec.md §6
// names: stemming/lemmatization toggles, document/title storage
// toggles, and tokenizer length bounds. The teacher's search-relevance
// settings (SearchableFields, FilterableFields, typo tolerance,
// RankingCriteria, DistinctField) have no counterpart in spec.md's
// single-field, typo-intolerant model and are dropped.
package config

import "fmt"

// DatabaseOptions configures a Database instance at creation time.
type DatabaseOptions struct {
	UseStemming       bool `yaml:"use_stemming"`
	UseLemmatization  bool `yaml:"use_lemmatization"`
	StoreDocuments    bool `yaml:"store_documents"`
	CompressDocuments bool `yaml:"compress_documents"`
	StoreTitles       bool `yaml:"store_titles"`
	MinTokenLength    int  `yaml:"min_token_length"`
	MaxTokenLength    int  `yaml:"max_token_length"`
}

// DefaultOptions mirrors the tokenizer's stated defaults (spec.md
// §4.1) with stemming, lemmatization, and storage left off.
func DefaultOptions() DatabaseOptions {
	return DatabaseOptions{
		MinTokenLength: 1,
		MaxTokenLength: 1000,
	}
}

// Validate reports configuration conflicts, mirroring the teacher's
// ValidateFieldNames shape (a slice of human-readable problems rather
// than a single error) adapted to this option set.
func (o DatabaseOptions) Validate() []string {
	var problems []string

	if o.UseStemming && o.UseLemmatization {
		// Not a conflict per se — Pipeline resolution prefers
		// lemmatization and falls back to the stemmer internally via
		// the lemmatizer itself, so both set is harmless, but it is
		// surprising enough to flag.
		problems = append(problems, "both use_stemming and use_lemmatization are set; lemmatization takes precedence")
	}
	if o.CompressDocuments && !o.StoreDocuments {
		problems = append(problems, "compress_documents has no effect unless store_documents is also set")
	}
	if o.MinTokenLength < 0 {
		problems = append(problems, fmt.Sprintf("min_token_length must be >= 0, got %d", o.MinTokenLength))
	}
	if o.MaxTokenLength > 0 && o.MaxTokenLength < o.MinTokenLength {
		problems = append(problems, fmt.Sprintf("max_token_length (%d) is less than min_token_length (%d)", o.MaxTokenLength, o.MinTokenLength))
	}

	return problems
}

// ApplyDefaults fills in zero-valued length bounds, mirroring the
// teacher's ApplyDefaults.
func (o *DatabaseOptions) ApplyDefaults() {
	if o.MinTokenLength == 0 {
		o.MinTokenLength = 1
	}
	if o.MaxTokenLength == 0 {
		o.MaxTokenLength = 1000
	}
}
