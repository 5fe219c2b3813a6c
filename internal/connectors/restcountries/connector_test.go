package restcountries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/corpusfetch/internal/connectors/httpapi"
	"github.com/custodia-labs/corpusfetch/internal/connectors/ratelimit"
	"github.com/custodia-labs/corpusfetch/internal/core/domain"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driven"
)

const unitedStatesJSON = `[{
	"name": {"common": "United States", "official": "United States of America"},
	"capital": ["Washington, D.C."],
	"region": "Americas",
	"subregion": "North America",
	"population": 331000000,
	"area": 9372610.0,
	"languages": {"eng": "English"},
	"currencies": {"USD": {"name": "United States dollar", "symbol": "$"}},
	"timezones": ["UTC-12:00", "UTC-11:00"],
	"borders": ["CAN", "MEX"],
	"tld": [".us"],
	"idd": {"root": "+1", "suffixes": ["201", "202"]},
	"independent": true,
	"unMember": true
}]`

// newTestConnector serves bodies keyed by the decoded path segment.
func newTestConnector(t *testing.T, bodies map[string]string) (*Connector, *[]string) {
	t.Helper()
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/v3.1/name/")
		paths = append(paths, name)
		body, ok := bodies[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status":404,"message":"Not Found"}`))
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	c := New(httpapi.NewClient(time.Second, ""), ratelimit.New(0, nil),
		WithAPIURL(server.URL+"/v3.1/name"))
	return c, &paths
}

func TestNew(t *testing.T) {
	t.Run("creates connector with defaults", func(t *testing.T) {
		c := New(httpapi.NewClient(0, ""), ratelimit.New(0, nil))

		assert.Equal(t, "restcountries", c.Type())
		assert.Equal(t, domain.SourceRESTCountries, c.Source())
		assert.Equal(t, DefaultCountries(), c.DefaultKeys())
		assert.Equal(t, DefaultAPIURL, c.apiURL)
	})

	t.Run("countries override", func(t *testing.T) {
		c := New(nil, nil, WithCountries([]string{"Japan"}))

		assert.Equal(t, []string{"Japan"}, c.DefaultKeys())
	})

	t.Run("api url gains trailing slash", func(t *testing.T) {
		c := New(nil, nil, WithAPIURL("http://localhost/name"))

		assert.Equal(t, "http://localhost/name/", c.apiURL)
	})

	t.Run("implements Connector interface", func(t *testing.T) {
		var _ driven.Connector = New(nil, nil)
	})
}

func TestFetch_RendersProfile(t *testing.T) {
	c, paths := newTestConnector(t, map[string]string{"United States": unitedStatesJSON})

	results := c.Fetch(context.Background(), []string{"United States"}, nil)

	assert.Equal(t, []string{"United States"}, *paths)
	docs := domain.Successful(results)
	require.Len(t, docs, 1)
	doc := docs[0]
	assert.Equal(t, "Country Profile: United States", doc.Title)
	assert.Equal(t, domain.SourceRESTCountries, doc.Source)
	assert.Equal(t, "https://restcountries.com/", doc.URL)

	want := strings.Join([]string{
		"Country: United States",
		"Official Name: United States of America",
		"Capital: Washington, D.C.",
		"Region: Americas\nSubregion: North America",
		"Population: 331,000,000",
		"Area: 9,372,610.0 km²",
		"Languages: English",
		"Currencies: United States dollar ($)",
		"Timezones: UTC-12:00, UTC-11:00",
		"Borders: CAN, MEX",
		"Top Level Domain: .us",
		"Calling Code: +201, +202",
		"Independent: Yes",
		"UN Member: Yes",
	}, "\n\n")
	assert.Equal(t, want, doc.Content)
}

func TestFetch_PopulationThousandsSeparators(t *testing.T) {
	c, _ := newTestConnector(t, map[string]string{"United States": unitedStatesJSON})

	docs := domain.Successful(c.Fetch(context.Background(), []string{"United States"}, nil))

	require.Len(t, docs, 1)
	assert.Contains(t, docs[0].Content, "Population: 331,000,000")
}

func TestFetch_AbsentFieldsRenderNA(t *testing.T) {
	c, _ := newTestConnector(t, map[string]string{"Atlantis": `[{}]`})

	results := c.Fetch(context.Background(), []string{"Atlantis"}, nil)

	docs := domain.Successful(results)
	require.Len(t, docs, 1)
	content := docs[0].Content
	assert.Equal(t, "Country Profile: Atlantis", docs[0].Title)
	assert.Contains(t, content, "Country: Atlantis")
	for _, label := range []string{
		"Official Name", "Capital", "Region", "Subregion", "Population", "Area",
		"Languages", "Currencies", "Timezones", "Top Level Domain", "Calling Code",
		"Independent", "UN Member",
	} {
		assert.Contains(t, content, label+": N/A", label)
	}
	assert.Contains(t, content, "Borders: No land borders")
}

func TestFetch_EmptyCollectionsNeverFail(t *testing.T) {
	body := `[{"name":{"common":"Japan"},"languages":{},"currencies":{},"borders":[],"idd":{"root":"+8","suffixes":[]}}]`
	c, _ := newTestConnector(t, map[string]string{"Japan": body})

	results := c.Fetch(context.Background(), []string{"Japan"}, nil)

	require.True(t, results[0].Ok())
	content := results[0].Documents[0].Content
	assert.Contains(t, content, "Languages: N/A")
	assert.Contains(t, content, "Currencies: N/A")
	assert.Contains(t, content, "Borders: No land borders")
	assert.Contains(t, content, "Calling Code: N/A")
}

func TestFetch_CallingCodeWithoutSuffixes(t *testing.T) {
	tests := []struct {
		name string
		idd  string
	}{
		{name: "root only", idd: `{"root":"+8"}`},
		{name: "empty suffixes", idd: `{"root":"+8","suffixes":[]}`},
		{name: "missing idd", idd: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `[{"name":{"common":"Japan"},"idd":` + tt.idd + `}]`
			c, _ := newTestConnector(t, map[string]string{"Japan": body})

			docs := domain.Successful(c.Fetch(context.Background(), []string{"Japan"}, nil))

			require.Len(t, docs, 1)
			assert.Contains(t, docs[0].Content, "Calling Code: N/A")
			assert.NotContains(t, docs[0].Content, "+8")
		})
	}
}

func TestFetch_EmptyListProducesNoDocument(t *testing.T) {
	c, _ := newTestConnector(t, map[string]string{"Nowhere": `[]`})

	results := c.Fetch(context.Background(), []string{"Nowhere"}, nil)

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, domain.ErrNoContent)
	assert.Empty(t, domain.Successful(results))
}

func TestFetch_NotFoundIsSkipped(t *testing.T) {
	c, _ := newTestConnector(t, map[string]string{"Japan": `[{"name":{"common":"Japan"}}]`})

	results := c.Fetch(context.Background(), []string{"Narnia", "Japan"}, nil)

	require.Len(t, results, 2)
	assert.True(t, httpapi.IsNotFound(results[0].Err))
	docs := domain.Successful(results)
	require.Len(t, docs, 1)
	assert.Equal(t, "Country Profile: Japan", docs[0].Title)
}

func TestFetch_NonArrayBody(t *testing.T) {
	c, _ := newTestConnector(t, map[string]string{"France": `{"name":{"common":"France"}}`})

	results := c.Fetch(context.Background(), []string{"France"}, nil)

	assert.True(t, httpapi.IsDecode(results[0].Err))
}

func TestFetch_FirstMatchWins(t *testing.T) {
	body := `[{"name":{"common":"India"}},{"name":{"common":"British Indian Ocean Territory"}}]`
	c, _ := newTestConnector(t, map[string]string{"India": body})

	docs := domain.Successful(c.Fetch(context.Background(), []string{"India"}, nil))

	require.Len(t, docs, 1)
	assert.Equal(t, "Country Profile: India", docs[0].Title)
}

func TestCountry_Currencies(t *testing.T) {
	c := &country{Currencies: map[string]currency{
		"GBP": {Name: "British pound", Symbol: "£"},
		"EUR": {Name: "Euro", Symbol: "€"},
		"XXX": {Symbol: ""},
	}}

	assert.Equal(t, []string{"Euro (€)", "British pound (£)", "XXX ()"}, c.currencyLabels())
}

func TestCountry_CallingCodes(t *testing.T) {
	tests := []struct {
		name string
		idd  *dialling
		want []string
	}{
		{name: "nil idd", idd: nil, want: nil},
		{name: "root is ignored", idd: &dialling{Root: "+3", Suffixes: []string{"3"}}, want: []string{"+3"}},
		{name: "several suffixes", idd: &dialling{Root: "+1", Suffixes: []string{"201", "202"}}, want: []string{"+201", "+202"}},
		{name: "suffixes only", idd: &dialling{Suffixes: []string{"44"}}, want: []string{"+44"}},
		{name: "root only", idd: &dialling{Root: "+8"}, want: []string{}},
		{name: "empty", idd: &dialling{}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &country{IDD: tt.idd}
			assert.Equal(t, tt.want, c.callingCodes())
		})
	}
}

func TestCountry_LanguagesSortedByCode(t *testing.T) {
	c := &country{Languages: map[string]string{"fra": "French", "deu": "German", "eng": "English"}}

	assert.Equal(t, []string{"German", "English", "French"}, sortedValues(c.Languages))
}

func TestCountry_IndependentFlags(t *testing.T) {
	no := false
	c := &country{Independent: &no}

	content := c.Render("Greenland")

	assert.Contains(t, content, "Independent: No")
	assert.Contains(t, content, "UN Member: N/A")
}
