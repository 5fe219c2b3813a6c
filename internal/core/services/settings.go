package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/corpusfetch/internal/core/domain"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driven"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyHTTPTimeout        = "http.timeout_seconds"
	keyHTTPUserAgent      = "http.user_agent"
	keyRateLimitCeiling   = "rate_limit.max_requests_per_second"
	keyWikipediaTopics    = "wikipedia.topics"
	keyWikipediaDelay     = "wikipedia.delay_ms"
	keyCountriesList      = "restcountries.countries"
	keyCountriesDelay     = "restcountries.delay_ms"
	keyOpenLibraryDelay   = "openlibrary.delay_ms"
	keyOpenLibraryLimit   = "openlibrary.limit"
	keyOutputJSONPath     = "output.json_path"
	keyOutputDocumentsDir = "output.documents_dir"
)

// SettingsService reads run settings from a config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves the current settings.
func (s *SettingsService) Get() (*domain.FetchSettings, error) {
	settings, err := LoadSettings(s.configStore)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Set parses value according to key's type, checks the resulting settings
// and persists the value.
func (s *SettingsService) Set(key, value string) error {
	field, ok := settingFields[key]
	if !ok {
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
	parsed, err := field.parse(value)
	if err != nil {
		return fmt.Errorf("setting %s: %w: %v", key, domain.ErrInvalidInput, err)
	}

	// Other invalid keys surface through Validate below.
	settings, _ := LoadSettings(s.configStore)
	field.apply(&settings, parsed)
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("setting %s = %q: %w", key, value, err)
	}

	return s.configStore.Set(key, parsed)
}

// LoadSettings maps the config store onto typed settings. Absent keys keep
// their defaults; present keys are validated.
func LoadSettings(store driven.ConfigStore) (domain.FetchSettings, error) {
	settings := domain.DefaultFetchSettings()
	if store == nil {
		return settings, nil
	}
	l := loader{store: store}

	settings.HTTP.Timeout = l.seconds(keyHTTPTimeout, settings.HTTP.Timeout)
	settings.HTTP.UserAgent = l.string(keyHTTPUserAgent, settings.HTTP.UserAgent)
	settings.HTTP.MaxRequestsPerSecond = l.float(keyRateLimitCeiling, settings.HTTP.MaxRequestsPerSecond)

	settings.Wikipedia.Keys = store.GetStringSlice(keyWikipediaTopics)
	settings.Wikipedia.Delay = l.millis(keyWikipediaDelay, settings.Wikipedia.Delay)

	settings.RESTCountries.Keys = store.GetStringSlice(keyCountriesList)
	settings.RESTCountries.Delay = l.millis(keyCountriesDelay, settings.RESTCountries.Delay)

	settings.OpenLibrary.Delay = l.millis(keyOpenLibraryDelay, settings.OpenLibrary.Delay)
	settings.OpenLibrary.Limit = l.int(keyOpenLibraryLimit, settings.OpenLibrary.Limit)

	settings.Output.JSONPath = l.string(keyOutputJSONPath, settings.Output.JSONPath)
	settings.Output.DocumentsDir = l.string(keyOutputDocumentsDir, settings.Output.DocumentsDir)

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("config %s: %w", store.Path(), err)
	}
	return settings, nil
}

// loader reads keys with defaults, treating absent keys as "use default".
type loader struct {
	store driven.ConfigStore
}

func (l loader) has(key string) bool {
	_, ok := l.store.Get(key)
	return ok
}

func (l loader) string(key, fallback string) string {
	if v := l.store.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (l loader) int(key string, fallback int) int {
	if !l.has(key) {
		return fallback
	}
	return l.store.GetInt(key)
}

func (l loader) float(key string, fallback float64) float64 {
	if !l.has(key) {
		return fallback
	}
	return l.store.GetFloat(key)
}

func (l loader) seconds(key string, fallback time.Duration) time.Duration {
	if !l.has(key) {
		return fallback
	}
	return time.Duration(l.store.GetFloat(key) * float64(time.Second))
}

func (l loader) millis(key string, fallback time.Duration) time.Duration {
	if !l.has(key) {
		return fallback
	}
	return time.Duration(l.store.GetInt(key)) * time.Millisecond
}

// settingField converts a command-line value into the type the config file
// stores for a key, and applies it to typed settings.
type settingField struct {
	parse func(string) (any, error)
	apply func(*domain.FetchSettings, any)
}

var settingFields = map[string]settingField{
	keyHTTPTimeout: {parseFloat, func(s *domain.FetchSettings, v any) {
		s.HTTP.Timeout = time.Duration(v.(float64) * float64(time.Second))
	}},
	keyHTTPUserAgent: {parseString, func(s *domain.FetchSettings, v any) {
		if ua := v.(string); ua != "" {
			s.HTTP.UserAgent = ua
		}
	}},
	keyRateLimitCeiling: {parseFloat, func(s *domain.FetchSettings, v any) {
		s.HTTP.MaxRequestsPerSecond = v.(float64)
	}},
	keyWikipediaTopics: {parseList, func(s *domain.FetchSettings, v any) {
		s.Wikipedia.Keys = v.([]string)
	}},
	keyWikipediaDelay: {parseInt, func(s *domain.FetchSettings, v any) {
		s.Wikipedia.Delay = time.Duration(v.(int64)) * time.Millisecond
	}},
	keyCountriesList: {parseList, func(s *domain.FetchSettings, v any) {
		s.RESTCountries.Keys = v.([]string)
	}},
	keyCountriesDelay: {parseInt, func(s *domain.FetchSettings, v any) {
		s.RESTCountries.Delay = time.Duration(v.(int64)) * time.Millisecond
	}},
	keyOpenLibraryDelay: {parseInt, func(s *domain.FetchSettings, v any) {
		s.OpenLibrary.Delay = time.Duration(v.(int64)) * time.Millisecond
	}},
	keyOpenLibraryLimit: {parseInt, func(s *domain.FetchSettings, v any) {
		s.OpenLibrary.Limit = int(v.(int64))
	}},
	keyOutputJSONPath: {parseString, func(s *domain.FetchSettings, v any) {
		s.Output.JSONPath = v.(string)
	}},
	keyOutputDocumentsDir: {parseString, func(s *domain.FetchSettings, v any) {
		s.Output.DocumentsDir = v.(string)
	}},
}

func parseString(v string) (any, error) {
	return strings.TrimSpace(v), nil
}

func parseInt(v string) (any, error) {
	return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
}

func parseFloat(v string) (any, error) {
	return strconv.ParseFloat(strings.TrimSpace(v), 64)
}

// parseList splits a comma-separated value, dropping blank items.
func parseList(v string) (any, error) {
	items := []string{}
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items, nil
}
