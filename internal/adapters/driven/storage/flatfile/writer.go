package flatfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/corpusfetch/internal/core/domain"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driven"
	"github.com/custodia-labs/corpusfetch/internal/logger"
)

// Ensure Writer implements the interfaces.
var (
	_ driven.CorpusWriter = (*Writer)(nil)
	_ driven.CorpusReader = (*Writer)(nil)
)

const (
	// SlugLength is the number of title characters kept in a file name.
	SlugLength = 50

	// Separator divides the header from the content in document files.
	Separator = "============================================================"
)

var slugReplacer = strings.NewReplacer("/", "_", `\`, "_", ":", "_")

// Writer writes the aggregate JSON file and per-document text files.
type Writer struct {
	jsonPath     string
	documentsDir string
}

// NewWriter creates a writer. Empty arguments fall back to the defaults.
func NewWriter(jsonPath, documentsDir string) *Writer {
	if jsonPath == "" {
		jsonPath = domain.DefaultJSONPath
	}
	if documentsDir == "" {
		documentsDir = domain.DefaultDocumentsDir
	}
	return &Writer{jsonPath: jsonPath, documentsDir: documentsDir}
}

// Locations returns the aggregate file path and the documents directory.
func (w *Writer) Locations() (jsonPath, documentsDir string) {
	return w.jsonPath, w.documentsDir
}

// WriteAggregate writes the corpus as an indented JSON array, replacing any
// previous file. An empty corpus writes [].
func (w *Writer) WriteAggregate(ctx context.Context, corpus *domain.Corpus) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := EncodeAggregate(corpus.Documents())
	if err != nil {
		return fmt.Errorf("encode aggregate: %w", err)
	}

	if dir := filepath.Dir(w.jsonPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create aggregate directory: %w", err)
		}
	}
	if err := os.WriteFile(w.jsonPath, data, 0644); err != nil {
		return fmt.Errorf("write aggregate: %w", err)
	}

	logger.Debug("wrote %d document(s) to %s", corpus.Len(), w.jsonPath)
	return nil
}

// WriteDocuments writes one text file per document, numbered in corpus order.
// The first failure stops the loop; files already written are kept.
func (w *Writer) WriteDocuments(ctx context.Context, corpus *domain.Corpus) error {
	if err := os.MkdirAll(w.documentsDir, 0755); err != nil {
		return fmt.Errorf("create documents directory: %w", err)
	}

	for i, doc := range corpus.Documents() {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(w.documentsDir, Filename(i+1, doc.Title))
		if err := os.WriteFile(path, []byte(RenderDocument(doc)), 0644); err != nil {
			return fmt.Errorf("write document %d: %w", i+1, err)
		}
	}

	logger.Debug("wrote %d document file(s) to %s", corpus.Len(), w.documentsDir)
	return nil
}

// ReadAggregate reads an aggregate file written by WriteAggregate.
func (w *Writer) ReadAggregate(ctx context.Context, path string) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		path = w.jsonPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("read aggregate: %w", err)
	}

	var docs []domain.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode aggregate %s: %v", domain.ErrInvalidInput, path, err)
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, nil
}

// EncodeAggregate renders docs as a 2-space indented JSON array.
// HTML characters are not escaped and non-ASCII text is kept as UTF-8.
func EncodeAggregate(docs []domain.Document) ([]byte, error) {
	if docs == nil {
		docs = []domain.Document{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(docs); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Slug returns the first SlugLength characters of title with path
// separators and colons replaced by underscores.
func Slug(title string) string {
	runes := []rune(title)
	if len(runes) > SlugLength {
		runes = runes[:SlugLength]
	}
	return slugReplacer.Replace(string(runes))
}

// Filename returns the document file name for the 1-based position index.
func Filename(index int, title string) string {
	return fmt.Sprintf("%02d_%s.txt", index, Slug(title))
}

// RenderDocument returns the text file body for doc.
func RenderDocument(doc domain.Document) string {
	var b strings.Builder
	b.WriteString("Title: " + doc.Title + "\n")
	b.WriteString("Source: " + doc.Source.String() + "\n")
	if doc.URL != "" {
		b.WriteString("URL: " + doc.URL + "\n")
	}
	b.WriteString("\n" + Separator + "\n\n")
	b.WriteString(doc.Content)
	return b.String()
}
