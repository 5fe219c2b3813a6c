package restcountries

const (
	// DefaultAPIURL is the v3.1 name lookup endpoint; the country name is appended.
	DefaultAPIURL = "https://restcountries.com/v3.1/name/"

	// ReferenceURL is stamped on every country document. Profiles are not
	// individually addressable.
	ReferenceURL = "https://restcountries.com/"

	// TitlePrefix precedes the common name in document titles.
	TitlePrefix = "Country Profile: "
)

// DefaultCountries returns the countries requested when no override is configured.
func DefaultCountries() []string {
	return []string{
		"United States",
		"United Kingdom",
		"Germany",
		"France",
		"Japan",
		"Canada",
		"Australia",
		"Brazil",
		"India",
		"China",
	}
}
