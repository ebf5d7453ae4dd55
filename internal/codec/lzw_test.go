package codec

import (
	"bytes"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"a",
		"abababababab",
		"the quick brown fox jumps over the lazy dog",
		strings.Repeat("a", 20000),
	}

	for _, c := range cases {
		compressed := Compress([]byte(c))
		got := Decompress(compressed)
		if !bytes.Equal(got, []byte(c)) {
			t.Fatalf("round trip mismatch for input of length %d: got %q, want %q", len(c), got, c)
		}
	}
}

func TestCompressionShrinksHighlyRepetitiveInput(t *testing.T) {
	input := bytes.Repeat([]byte("a"), 20000)
	compressed := Compress(input)
	if len(compressed) >= len(input) {
		t.Fatalf("expected compressed size < %d, got %d", len(input), len(compressed))
	}
}

func TestDecompressMalformedStream(t *testing.T) {
	if got := Decompress(nil); got != nil {
		t.Fatalf("expected nil for empty stream, got %q", got)
	}

	// A single 12-bit code that is itself the END marker decodes to empty.
	if got := Decompress(packCodes([]uint16{endCode})); len(got) != 0 {
		t.Fatalf("expected empty result for END-only stream, got %q", got)
	}

	// A code beyond both the initial aliases and the next-assignable code
	// is impossible and must not panic or partially decode.
	if got := Decompress(packCodes([]uint16{4090, endCode})); got != nil {
		t.Fatalf("expected nil for impossible code, got %q", got)
	}
}

func TestDictionaryGrowthStopsAtBound(t *testing.T) {
	// Feed enough distinct two-byte sequences to exhaust the dictionary
	// space well before any code collides with the reserved END marker.
	var buf bytes.Buffer
	for i := 0; i < 5000; i++ {
		buf.WriteByte(byte(i % 251))
		buf.WriteByte(byte((i / 251) % 251))
	}
	input := buf.Bytes()

	compressed := Compress(input)
	got := Decompress(compressed)
	if !bytes.Equal(got, input) {
		t.Fatalf("round trip mismatch after dictionary saturation")
	}
}
