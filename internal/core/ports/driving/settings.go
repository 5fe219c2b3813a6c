package driving

import "github.com/custodia-labs/corpusfetch/internal/core/domain"

// SettingsService resolves run settings from configuration.
type SettingsService interface {
	// Get returns the configured settings, with defaults for absent keys.
	// Invalid values are reported as domain.ErrInvalidInput.
	Get() (*domain.FetchSettings, error)

	// Set parses value for a dot-notation key and persists it. Unknown keys,
	// unparsable values and values that would make the settings invalid are
	// reported as domain.ErrInvalidInput and nothing is written.
	Set(key, value string) error
}
