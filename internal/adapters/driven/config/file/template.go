package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/corpusfetch/internal/core/domain"
)

// ErrConfigExists is returned by WriteTemplate when the file exists and
// overwriting was not requested.
var ErrConfigExists = errors.New("config file already exists")

// Template is the on-disk layout of the config file. Its keys are the
// dot-notation keys read back through ConfigStore.
type Template struct {
	HTTP          httpTable      `toml:"http"`
	RateLimit     rateLimitTable `toml:"rate_limit"`
	Wikipedia     wikipediaTable `toml:"wikipedia"`
	RESTCountries countriesTable `toml:"restcountries"`
	OpenLibrary   catalogTable   `toml:"openlibrary"`
	Output        outputTable    `toml:"output"`
}

type httpTable struct {
	TimeoutSeconds int    `toml:"timeout_seconds" comment:"Per-request timeout, applied to every source."`
	UserAgent      string `toml:"user_agent" comment:"User-Agent header sent upstream."`
}

type rateLimitTable struct {
	MaxRequestsPerSecond float64 `toml:"max_requests_per_second" comment:"Run-wide request ceiling. 0 disables it."`
}

type wikipediaTable struct {
	Topics  []string `toml:"topics" comment:"Article titles to fetch, in order."`
	DelayMS int64    `toml:"delay_ms" comment:"Pause after every request."`
}

type countriesTable struct {
	Countries []string `toml:"countries" comment:"Country names to profile, in order."`
	DelayMS   int64    `toml:"delay_ms" comment:"Pause after every request."`
}

type catalogTable struct {
	DelayMS int64 `toml:"delay_ms" comment:"Pause after every request."`
	Limit   int   `toml:"limit" comment:"Works listed per subject, at most 3."`
}

type outputTable struct {
	JSONPath     string `toml:"json_path" comment:"Aggregate JSON file."`
	DocumentsDir string `toml:"documents_dir" comment:"Directory for per-document text files."`
}

// NewTemplate converts typed settings into the file layout.
func NewTemplate(s domain.FetchSettings) Template {
	return Template{
		HTTP: httpTable{
			TimeoutSeconds: int(s.HTTP.Timeout.Seconds()),
			UserAgent:      s.HTTP.UserAgent,
		},
		RateLimit: rateLimitTable{MaxRequestsPerSecond: s.HTTP.MaxRequestsPerSecond},
		Wikipedia: wikipediaTable{
			Topics:  s.Wikipedia.Keys,
			DelayMS: s.Wikipedia.Delay.Milliseconds(),
		},
		RESTCountries: countriesTable{
			Countries: s.RESTCountries.Keys,
			DelayMS:   s.RESTCountries.Delay.Milliseconds(),
		},
		OpenLibrary: catalogTable{
			DelayMS: s.OpenLibrary.Delay.Milliseconds(),
			Limit:   s.OpenLibrary.Limit,
		},
		Output: outputTable{
			JSONPath:     s.Output.JSONPath,
			DocumentsDir: s.Output.DocumentsDir,
		},
	}
}

// WriteTemplate writes t to path as commented TOML.
// An existing file is only replaced when overwrite is set.
func WriteTemplate(path string, t Template, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := toml.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
