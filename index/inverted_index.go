// Package index implements the append-only inverted index: posting
// lists, per-document term frequencies, document lengths, and
// optionally-compressed storage of original text and titles.
//
// Restructured from the teacher's index/inverted_index.go and
// index/posting.go (struct shape, sync.RWMutex-guarded map) for the
// append-only, no-delete, no-field semantics of spec.md §4.5. Disk
// persistence (the teacher's GobEncode/GobDecode) is dropped — spec.md
// Non-goals exclude persistence to disk.
package index

import "sync"

// Options mirrors the storage-related fields of Database.create's
// options (spec.md §6): whether original text is retained at all,
// whether retained text is LZW-compressed, and whether titles are
// retained.
type Options struct {
	StoreDocuments    bool
	CompressDocuments bool
	StoreTitles       bool
}

// Index is the append-only inverted index. The zero value is not
// usable — construct with New.
type Index struct {
	mu sync.RWMutex

	opts Options

	postings  map[string][]uint32 // term -> sorted, distinct document ids
	termFreq  []map[string]uint32 // per-document term -> occurrence count
	docLength []int               // per-document normalized token count

	totalTokens int

	texts      [][]byte // per-document stored text, possibly LZW-compressed; nil if not stored
	hasText    []bool
	titles     []string
	hasTitle   []bool
}

// New constructs an empty Index.
func New(opts Options) *Index {
	return &Index{
		opts:     opts,
		postings: make(map[string][]uint32),
	}
}

// Append records terms as a new document and returns its allocated
// id. Duplicates in terms increment that term's frequency for the
// document but contribute only once to its posting list.
func (ix *Index) Append(terms []string) uint32 {
	return ix.appendDocument(terms, nil, false)
}

// AppendWithText behaves like Append and additionally stores text as
// the document's original text (compressed per Options, if storage of
// documents is enabled).
func (ix *Index) AppendWithText(terms []string, text string) uint32 {
	return ix.appendDocument(terms, []byte(text), true)
}

func (ix *Index) appendDocument(terms []string, text []byte, hasText bool) uint32 {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	docID := uint32(len(ix.docLength))

	freq := make(map[string]uint32, len(terms))
	for _, t := range terms {
		if freq[t] == 0 {
			ix.postings[t] = append(ix.postings[t], docID)
		}
		freq[t]++
	}

	ix.termFreq = append(ix.termFreq, freq)
	ix.docLength = append(ix.docLength, len(terms))
	ix.totalTokens += len(terms)

	ix.texts = append(ix.texts, storedText(text, hasText, ix.opts))
	ix.hasText = append(ix.hasText, hasText && ix.opts.StoreDocuments)
	ix.titles = append(ix.titles, "")
	ix.hasTitle = append(ix.hasTitle, false)

	return docID
}

// SetTitle attaches title to an already-appended document. A no-op
// when title storage is disabled by Options.
func (ix *Index) SetTitle(docID uint32, title string) {
	if !ix.opts.StoreTitles {
		return
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if int(docID) >= len(ix.titles) {
		return
	}
	ix.titles[docID] = title
	ix.hasTitle[docID] = true
}

// PostingList returns a copy of the sorted, distinct document ids
// that contain term, or nil if term is unknown.
func (ix *Index) PostingList(term string) []uint32 {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	src := ix.postings[term]
	if len(src) == 0 {
		return nil
	}
	out := make([]uint32, len(src))
	copy(out, src)
	return out
}

// DocumentFrequency returns |PostingList(term)|.
func (ix *Index) DocumentFrequency(term string) int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.postings[term])
}

// TermFrequency returns the occurrence count of term within doc, zero
// if either is absent.
func (ix *Index) TermFrequency(doc uint32, term string) int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if int(doc) >= len(ix.termFreq) {
		return 0
	}
	return int(ix.termFreq[doc][term])
}

// DocumentLength returns the normalized token count recorded for doc.
func (ix *Index) DocumentLength(doc uint32) int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if int(doc) >= len(ix.docLength) {
		return 0
	}
	return ix.docLength[doc]
}

// DocumentCount returns the number of documents ever appended, which
// equals the next id to be allocated.
func (ix *Index) DocumentCount() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.docLength)
}

// TermCount returns the number of distinct terms ever observed.
func (ix *Index) TermCount() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.postings)
}

// AverageDocumentLength returns total tokens divided by document
// count, zero on an empty index.
func (ix *Index) AverageDocumentLength() float64 {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if len(ix.docLength) == 0 {
		return 0
	}
	return float64(ix.totalTokens) / float64(len(ix.docLength))
}

// OriginalText returns the stored text for doc, decompressing it if
// compression is enabled. The second return value is false when the
// document has no stored text.
func (ix *Index) OriginalText(doc uint32) (string, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if int(doc) >= len(ix.hasText) || !ix.hasText[doc] {
		return "", false
	}
	return string(decodeText(ix.texts[doc], ix.opts.CompressDocuments)), true
}

// Title returns the stored title for doc. The second return value is
// false when the document has no stored title.
func (ix *Index) Title(doc uint32) (string, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if int(doc) >= len(ix.hasTitle) || !ix.hasTitle[doc] {
		return "", false
	}
	return ix.titles[doc], true
}

// Clear drops every document, term, and stored payload, and resets the
// id counter to zero.
func (ix *Index) Clear() {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.postings = make(map[string][]uint32)
	ix.termFreq = nil
	ix.docLength = nil
	ix.totalTokens = 0
	ix.texts = nil
	ix.hasText = nil
	ix.titles = nil
	ix.hasTitle = nil
}
