// Package app wires adapters, connectors and services into the CLI.
package app

import (
	"github.com/custodia-labs/corpusfetch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/corpusfetch/internal/adapters/driven/storage/flatfile"
	"github.com/custodia-labs/corpusfetch/internal/adapters/driving/cli"
	"github.com/custodia-labs/corpusfetch/internal/connectors/httpapi"
	"github.com/custodia-labs/corpusfetch/internal/connectors/openlibrary"
	"github.com/custodia-labs/corpusfetch/internal/connectors/ratelimit"
	"github.com/custodia-labs/corpusfetch/internal/connectors/restcountries"
	"github.com/custodia-labs/corpusfetch/internal/connectors/wikipedia"
	"github.com/custodia-labs/corpusfetch/internal/core/domain"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driven"
	"github.com/custodia-labs/corpusfetch/internal/core/ports/driving"
	"github.com/custodia-labs/corpusfetch/internal/core/services"
)

// Services returns the CLI services backed by the real adapters.
func Services() cli.Services {
	return cli.Services{
		Settings:  OpenSettings,
		Builder:   NewBuilder,
		Inspector: services.NewInspectService(flatfile.NewWriter("", "")),
		Defaults:  Defaults,
	}
}

// OpenSettings opens the TOML config at path.
func OpenSettings(path string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(path)
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store), nil
}

// NewBuilder assembles the pipeline for settings: the three connectors in
// fixed order, sharing one HTTP client and request ceiling, and the flat
// file writer.
func NewBuilder(settings domain.FetchSettings) (driving.CorpusBuilder, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	writer := flatfile.NewWriter(settings.Output.JSONPath, settings.Output.DocumentsDir)
	return services.NewCorpusService(Connectors(settings), writer), nil
}

// Connectors builds the connectors in pipeline order.
func Connectors(settings domain.FetchSettings) []driven.Connector {
	client := httpapi.NewClient(settings.HTTP.Timeout, settings.HTTP.UserAgent)
	ceiling := ratelimit.NewCeiling(settings.HTTP.MaxRequestsPerSecond)

	return []driven.Connector{
		wikipedia.New(client,
			ratelimit.New(settings.Wikipedia.Delay, ceiling),
			wikipedia.WithTopics(settings.Wikipedia.Keys)),
		restcountries.New(client,
			ratelimit.New(settings.RESTCountries.Delay, ceiling),
			restcountries.WithCountries(settings.RESTCountries.Keys)),
		openlibrary.New(client,
			ratelimit.New(settings.OpenLibrary.Delay, ceiling),
			openlibrary.WithLimit(settings.OpenLibrary.Limit)),
	}
}

// Defaults returns the built-in settings with every source's default keys.
func Defaults() domain.FetchSettings {
	settings := domain.DefaultFetchSettings()
	settings.Wikipedia.Keys = wikipedia.DefaultTopics()
	settings.RESTCountries.Keys = restcountries.DefaultCountries()
	return settings
}
