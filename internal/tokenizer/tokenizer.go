// Package tokenizer splits raw text into classified spans driven by
// ASCII character class, independent of any stemming or lemmatization
// concern.
//
// Restructured from the teacher's internal/tokenizer/tokenizer.go
// (small pure functions, a doc comment per exported identifier) to
// implement the character-class span algorithm of
// original_source/lib/tokenizer/tokenizer.h and spec.md §4.1, in place
// of the teacher's regex/camelCase-splitting tokenizer.
package tokenizer

// Kind classifies a Token.
type Kind int

const (
	Word Kind = iota
	Number
	Punctuation
	Whitespace
)

// Token is a single classified span of the input.
type Token struct {
	Text   string
	Start  int
	Length int
	Kind   Kind
}

// Options controls which spans are emitted and how Word text is
// case-folded. The zero value is not the default — use DefaultOptions.
type Options struct {
	LowerCase       bool
	SkipWhitespace  bool
	SkipPunctuation bool
	SkipNumbers     bool
	MinTokenLength  int
	MaxTokenLength  int
}

// DefaultOptions matches spec.md §4.1's stated defaults.
func DefaultOptions() Options {
	return Options{
		LowerCase:       true,
		SkipWhitespace:  true,
		SkipPunctuation: true,
		SkipNumbers:     true,
		MinTokenLength:  1,
		MaxTokenLength:  1000,
	}
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isWordContinuation(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_' || c == '-'
}

func isNumberContinuation(c byte) bool {
	return isDigit(c) || c == '.' || c == ','
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Tokenize splits text into classified spans in strictly increasing
// start-offset order, applying the options' lowercase-folding, kind
// filtering, and Word length bounds.
func Tokenize(text string, opts Options) []Token {
	var out []Token
	n := len(text)
	i := 0

	for i < n {
		c := text[i]

		switch {
		case isWhitespace(c):
			start := i
			for i < n && isWhitespace(text[i]) {
				i++
			}
			if !opts.SkipWhitespace {
				out = append(out, Token{Text: text[start:i], Start: start, Length: i - start, Kind: Whitespace})
			}

		case isAlpha(c):
			start := i
			for i < n && isWordContinuation(text[i]) {
				i++
			}
			raw := text[start:i]
			if len(raw) >= opts.MinTokenLength && len(raw) <= opts.MaxTokenLength {
				out = append(out, Token{Text: foldCase(raw, opts.LowerCase), Start: start, Length: i - start, Kind: Word})
			}

		case isDigit(c):
			start := i
			for i < n && isNumberContinuation(text[i]) {
				i++
			}
			if !opts.SkipNumbers {
				out = append(out, Token{Text: text[start:i], Start: start, Length: i - start, Kind: Number})
			}

		default:
			if !opts.SkipPunctuation {
				out = append(out, Token{Text: text[i : i+1], Start: i, Length: 1, Kind: Punctuation})
			}
			i++
		}
	}

	return out
}

func foldCase(s string, lowerCase bool) string {
	if !lowerCase {
		return s
	}
	b := []byte(s)
	changed := false
	for idx, c := range b {
		if lc := lower(c); lc != c {
			b[idx] = lc
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}
