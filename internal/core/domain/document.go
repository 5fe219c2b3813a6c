package domain

// SourceLabel identifies which connector produced a document.
// The set of labels is closed; see IsValid.
type SourceLabel string

// Known source labels. These strings appear verbatim in the aggregate file.
const (
	SourceWikipedia     SourceLabel = "Wikipedia"
	SourceRESTCountries SourceLabel = "REST Countries API"
	SourceOpenLibrary   SourceLabel = "Open Library"
)

// AllSources returns every known label in pipeline order.
func AllSources() []SourceLabel {
	return []SourceLabel{SourceWikipedia, SourceRESTCountries, SourceOpenLibrary}
}

// IsValid returns true if the label is one of the known sources.
func (s SourceLabel) IsValid() bool {
	switch s {
	case SourceWikipedia, SourceRESTCountries, SourceOpenLibrary:
		return true
	default:
		return false
	}
}

// String returns the label text.
func (s SourceLabel) String() string {
	return string(s)
}

// Document is the unit of the corpus.
// It is the canonical representation after normalisation and is never
// mutated once created.
type Document struct {
	// Title is the human-readable title. Not unique across sources.
	Title string `json:"title"`

	// Content is the normalised body text.
	Content string `json:"content"`

	// Source is the label of the connector that produced the document.
	Source SourceLabel `json:"source"`

	// URL is the canonical reference link, empty when the source
	// is not item-addressable.
	URL string `json:"url,omitempty"`
}

// Validate checks the document invariants.
func (d *Document) Validate() error {
	if d.Content == "" {
		return ErrInvalidInput
	}
	if !d.Source.IsValid() {
		return ErrInvalidInput
	}
	return nil
}
