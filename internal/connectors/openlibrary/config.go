package openlibrary

import "github.com/custodia-labs/corpusfetch/internal/core/domain"

const (
	// DefaultAPIURL is the subject listing endpoint. The subject slug and
	// ".json" are appended per request.
	DefaultAPIURL = "https://openlibrary.org/subjects/"

	// BaseURL prefixes work keys to build reference links.
	BaseURL = "https://openlibrary.org"

	// TitlePrefix prefixes every document title.
	TitlePrefix = "Book: "

	// Unknown is rendered for absent titles, authors and years.
	Unknown = "Unknown"

	// DefaultLimit caps the works taken per subject.
	DefaultLimit = domain.DefaultOpenLibraryLimit
)

// DefaultSubjects returns the subject slugs listed on every run.
func DefaultSubjects() []string {
	return []string{
		"business",
		"commerce",
		"retail",
		"marketing",
		"customer_service",
	}
}
