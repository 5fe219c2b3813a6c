package openlibrary

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/corpusfetch/internal/normalisers/textblock"
)

// subjectListing is the subject endpoint response.
type subjectListing struct {
	Works *[]work `json:"works"`
}

type work struct {
	Title            string   `json:"title"`
	Authors          []author `json:"authors"`
	FirstPublishYear *int     `json:"first_publish_year"`
	EditionCount     *int64   `json:"edition_count"`
	Key              string   `json:"key"`
}

type author struct {
	Name string `json:"name"`
}

var titleCaser = cases.Title(language.English)

// SubjectLabel turns a subject slug into a display label:
// "customer_service" becomes "Customer Service".
func SubjectLabel(subject string) string {
	return titleCaser.String(spaced(subject))
}

func spaced(subject string) string {
	return strings.ReplaceAll(subject, "_", " ")
}

func (w *work) title() string {
	if strings.TrimSpace(w.Title) == "" {
		return Unknown
	}
	return w.Title
}

// authorNames returns one name per listed author, Unknown for nameless ones.
func (w *work) authorNames() []string {
	names := make([]string, 0, len(w.Authors))
	for _, a := range w.Authors {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			name = Unknown
		}
		names = append(names, name)
	}
	return names
}

func (w *work) editions() string {
	if w.EditionCount == nil {
		return "0"
	}
	return strconv.FormatInt(*w.EditionCount, 10)
}

func (w *work) fields(subject string) []textblock.Field {
	var year textblock.Accessor
	if w.FirstPublishYear != nil {
		year = textblock.Const(strconv.Itoa(*w.FirstPublishYear))
	}
	description := fmt.Sprintf(
		"This book covers topics related to %s. It has been referenced %s times across different editions.",
		spaced(subject), w.editions())

	return []textblock.Field{
		{Label: "Book", Value: textblock.Const(w.title())},
		{Label: "Authors", Value: textblock.Join(w.authorNames(), ", "), Default: Unknown},
		{Label: "First Published", Value: year, Default: Unknown},
		{Label: "Subject", Value: textblock.Const(SubjectLabel(subject))},
		{Label: "Description", Value: textblock.Const(description)},
		{Label: "Available editions", Value: textblock.Raw(w.EditionCount), Default: "0"},
		{Label: "Key", Value: textblock.Text(w.Key)},
	}
}

// Render returns the work's text block for the subject it was listed under.
func (w *work) Render(subject string) string {
	return textblock.Render(w.fields(subject)...)
}
