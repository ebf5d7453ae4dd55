package index

import "github.com/go-ir/lexicon/internal/codec"

// storedText prepares text for storage according to opts: absent
// entirely when document storage is disabled or the caller supplied
// no text, otherwise LZW-compressed when CompressDocuments is set.
// Grounded on spec.md §9's open question (c): titles are never
// compressed, only original text.
func storedText(text []byte, hasText bool, opts Options) []byte {
	if !hasText || !opts.StoreDocuments {
		return nil
	}
	if opts.CompressDocuments {
		return codec.Compress(text)
	}
	out := make([]byte, len(text))
	copy(out, text)
	return out
}

func decodeText(stored []byte, compressed bool) []byte {
	if !compressed {
		return stored
	}
	return codec.Decompress(stored)
}
