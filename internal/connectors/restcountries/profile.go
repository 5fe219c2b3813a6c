package restcountries

import (
	"sort"
	"strings"

	"github.com/custodia-labs/corpusfetch/internal/normalisers/textblock"
)

// country is the subset of the v3.1 country object rendered into profiles.
// Pointer fields distinguish absent from zero.
type country struct {
	Name        *countryName        `json:"name"`
	Capital     []string            `json:"capital"`
	Region      string              `json:"region"`
	Subregion   string              `json:"subregion"`
	Population  *int64              `json:"population"`
	Area        *float64            `json:"area"`
	Languages   map[string]string   `json:"languages"`
	Currencies  map[string]currency `json:"currencies"`
	Timezones   []string            `json:"timezones"`
	Borders     []string            `json:"borders"`
	TLD         []string            `json:"tld"`
	IDD         *dialling           `json:"idd"`
	Independent *bool               `json:"independent"`
	UNMember    *bool               `json:"unMember"`
}

type countryName struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

type currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type dialling struct {
	Root     string   `json:"root"`
	Suffixes []string `json:"suffixes"`
}

// commonName returns the common name, falling back to the requested key.
func (c *country) commonName(key string) string {
	if c.Name != nil && strings.TrimSpace(c.Name.Common) != "" {
		return c.Name.Common
	}
	return key
}

func (c *country) officialName() string {
	if c.Name == nil {
		return ""
	}
	return c.Name.Official
}

// fields describes the profile layout.
func (c *country) fields(key string) []textblock.Field {
	return []textblock.Field{
		{Label: "Country", Value: textblock.Const(c.commonName(key))},
		{Label: "Official Name", Value: textblock.Text(c.officialName())},
		{Label: "Capital", Value: textblock.Join(c.Capital, ", ")},
		{Label: "Region", Value: textblock.Text(c.Region)},
		{Label: "Subregion", Value: textblock.Text(c.Subregion), SameBlock: true},
		{Label: "Population", Value: textblock.Int(c.Population)},
		{Label: "Area", Value: textblock.Suffixed(textblock.Float(c.Area), " km²")},
		{Label: "Languages", Value: textblock.Join(sortedValues(c.Languages), ", ")},
		{Label: "Currencies", Value: textblock.Join(c.currencyLabels(), ", ")},
		{Label: "Timezones", Value: textblock.Join(c.Timezones, ", ")},
		{Label: "Borders", Value: textblock.Join(c.Borders, ", "), Default: "No land borders"},
		{Label: "Top Level Domain", Value: textblock.Join(c.TLD, ", ")},
		{Label: "Calling Code", Value: textblock.Join(c.callingCodes(), ", ")},
		{Label: "Independent", Value: textblock.YesNo(c.Independent)},
		{Label: "UN Member", Value: textblock.YesNo(c.UNMember)},
	}
}

// Render returns the profile text for the country.
func (c *country) Render(key string) string {
	return textblock.Render(c.fields(key)...)
}

// currencyLabels renders "Name (symbol)" per currency, ordered by currency code.
func (c *country) currencyLabels() []string {
	codes := sortedKeys(c.Currencies)
	labels := make([]string, 0, len(codes))
	for _, code := range codes {
		cur := c.Currencies[code]
		name := cur.Name
		if name == "" {
			name = code
		}
		labels = append(labels, name+" ("+cur.Symbol+")")
	}
	return labels
}

// callingCodes renders "+<suffix>" per IDD suffix. The root is not part of
// the rendering, so a country without suffixes has no calling code.
func (c *country) callingCodes() []string {
	if c.IDD == nil {
		return nil
	}
	codes := make([]string, 0, len(c.IDD.Suffixes))
	for _, suffix := range c.IDD.Suffixes {
		codes = append(codes, "+"+suffix)
	}
	return codes
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedValues(m map[string]string) []string {
	keys := sortedKeys(m)
	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, m[k])
	}
	return values
}
