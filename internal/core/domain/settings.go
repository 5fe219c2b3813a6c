package domain

import "time"

// Default settings values.
const (
	DefaultHTTPTimeout       = 10 * time.Second
	DefaultUserAgent         = "RAGPoCBot/1.0 (Educational Purpose)"
	DefaultMaxRequestsPerSec = 5.0
	DefaultJSONPath          = "fetched_documents.json"
	DefaultDocumentsDir      = "sample_documents"

	DefaultWikipediaDelay     = 500 * time.Millisecond
	DefaultRESTCountriesDelay = 300 * time.Millisecond
	DefaultOpenLibraryDelay   = 500 * time.Millisecond

	// DefaultOpenLibraryLimit is the works listed per subject, and also the
	// largest value accepted.
	DefaultOpenLibraryLimit = 3
)

// HTTPSettings configures the shared upstream HTTP behaviour.
type HTTPSettings struct {
	// Timeout bounds each request. Applied uniformly to every connector.
	Timeout time.Duration

	// UserAgent is sent on every request.
	UserAgent string

	// MaxRequestsPerSecond is a run-wide ceiling. Zero disables it.
	MaxRequestsPerSecond float64
}

// ConnectorSettings configures one connector.
type ConnectorSettings struct {
	// Keys overrides the connector's default request keys when non-empty.
	Keys []string

	// Delay is the fixed hold after every request.
	Delay time.Duration

	// Limit caps the items requested per key, where the upstream supports it.
	Limit int
}

// OutputSettings configures where the corpus is written.
type OutputSettings struct {
	JSONPath     string
	DocumentsDir string
}

// FetchSettings is the typed configuration for a pipeline run.
type FetchSettings struct {
	HTTP          HTTPSettings
	Wikipedia     ConnectorSettings
	RESTCountries ConnectorSettings
	OpenLibrary   ConnectorSettings
	Output        OutputSettings
}

// DefaultFetchSettings returns settings with sensible defaults.
func DefaultFetchSettings() FetchSettings {
	return FetchSettings{
		HTTP: HTTPSettings{
			Timeout:              DefaultHTTPTimeout,
			UserAgent:            DefaultUserAgent,
			MaxRequestsPerSecond: DefaultMaxRequestsPerSec,
		},
		Wikipedia:     ConnectorSettings{Delay: DefaultWikipediaDelay},
		RESTCountries: ConnectorSettings{Delay: DefaultRESTCountriesDelay},
		OpenLibrary: ConnectorSettings{
			Delay: DefaultOpenLibraryDelay,
			Limit: DefaultOpenLibraryLimit,
		},
		Output: OutputSettings{
			JSONPath:     DefaultJSONPath,
			DocumentsDir: DefaultDocumentsDir,
		},
	}
}

// Validate checks the settings for values the pipeline cannot honour.
func (s *FetchSettings) Validate() error {
	if s.HTTP.Timeout <= 0 || s.HTTP.MaxRequestsPerSecond < 0 {
		return ErrInvalidInput
	}
	for _, c := range []ConnectorSettings{s.Wikipedia, s.RESTCountries, s.OpenLibrary} {
		if c.Delay < 0 || c.Limit < 0 {
			return ErrInvalidInput
		}
	}
	if s.OpenLibrary.Limit > DefaultOpenLibraryLimit {
		return ErrInvalidInput
	}
	if s.Output.JSONPath == "" || s.Output.DocumentsDir == "" {
		return ErrInvalidInput
	}
	return nil
}
