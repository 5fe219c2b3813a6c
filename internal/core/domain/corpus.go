package domain

// Corpus is the ordered collection of documents produced by one run.
// It is append-only until frozen. Order is insertion order; there is
// no sorting and no deduplication.
type Corpus struct {
	docs   []Document
	frozen bool
}

// NewCorpus creates an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{}
}

// NewCorpusFrom creates a frozen corpus holding docs, e.g. one read back from disk.
func NewCorpusFrom(docs []Document) *Corpus {
	c := &Corpus{docs: append([]Document(nil), docs...)}
	c.Freeze()
	return c
}

// Append adds documents to the end of the corpus.
// The whole batch is rejected if any document fails validation.
func (c *Corpus) Append(docs ...Document) error {
	if c.frozen {
		return ErrCorpusFrozen
	}
	for i := range docs {
		if err := docs[i].Validate(); err != nil {
			return err
		}
	}
	c.docs = append(c.docs, docs...)
	return nil
}

// Freeze prevents further appends.
func (c *Corpus) Freeze() {
	c.frozen = true
}

// Frozen reports whether the corpus has been frozen.
func (c *Corpus) Frozen() bool {
	return c.frozen
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.docs)
}

// Documents returns a copy of the documents in corpus order.
func (c *Corpus) Documents() []Document {
	out := make([]Document, len(c.docs))
	copy(out, c.docs)
	return out
}

// SourceCount is the number of documents for one source.
type SourceCount struct {
	Source SourceLabel
	Count  int
}

// CountBySource returns per-source counts in order of first appearance.
func (c *Corpus) CountBySource() []SourceCount {
	return CountBySource(c.docs)
}

// CountBySource groups docs by source in order of first appearance.
func CountBySource(docs []Document) []SourceCount {
	index := make(map[SourceLabel]int)
	var counts []SourceCount
	for i := range docs {
		src := docs[i].Source
		pos, ok := index[src]
		if !ok {
			pos = len(counts)
			index[src] = pos
			counts = append(counts, SourceCount{Source: src})
		}
		counts[pos].Count++
	}
	return counts
}
