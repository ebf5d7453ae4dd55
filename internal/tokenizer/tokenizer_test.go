package tokenizer

import "testing"

func words(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == Word {
			out = append(out, tok.Text)
		}
	}
	return out
}

func TestTokenizeDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"simple", "hello world", []string{"hello", "world"}},
		{"punctuation stripped", "hello, world!", []string{"hello", "world"}},
		{"numbers skipped by default", "item 123 test", []string{"item", "test"}},
		{"hyphen and underscore join words", "state-of-the-art my_variable", []string{"state-of-the-art", "my_variable"}},
		{"case folded", "HELLO World", []string{"hello", "world"}},
		{"only symbols", "!@#$%^", nil},
	}

	opts := DefaultOptions()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := words(Tokenize(tt.input, opts))
			if !equalStrings(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeOffsetsAreIncreasing(t *testing.T) {
	tokens := Tokenize("the quick, brown fox!", Options{
		LowerCase: true, MinTokenLength: 1, MaxTokenLength: 1000,
	})
	last := -1
	for _, tok := range tokens {
		if tok.Start <= last {
			t.Fatalf("token offsets not strictly increasing: %+v", tok)
		}
		last = tok.Start
	}
}

func TestTokenizeLengthBounds(t *testing.T) {
	opts := DefaultOptions()
	opts.MinTokenLength = 3
	opts.MaxTokenLength = 5
	got := words(Tokenize("a an and grasshopper jump", opts))
	want := []string{"and", "jump"}
	if !equalStrings(got, want) {
		t.Errorf("Tokenize with length bounds = %v, want %v", got, want)
	}
}

func TestTokenizeKeepsWhitespaceAndPunctuationWhenNotSkipped(t *testing.T) {
	opts := Options{LowerCase: false, MinTokenLength: 1, MaxTokenLength: 1000}
	got := Tokenize("hi, bob", opts)
	var kinds []Kind
	for _, tok := range got {
		kinds = append(kinds, tok.Kind)
	}
	want := []Kind{Word, Punctuation, Whitespace, Word}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(kinds), len(want), got)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d kind = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
