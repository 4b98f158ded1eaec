package cmd

import (
	"fmt"

	"github.com/django-nerd/folio/internal/config"
	"github.com/django-nerd/folio/internal/content"
	"github.com/django-nerd/folio/internal/endpoint"
	"github.com/django-nerd/folio/internal/fetch"
)

// loadConfig loads and validates the config with a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// originURL is the base URL the empty-string candidate resolves to.
func originURL(cfg *config.Config) string {
	if cfg.Origin.Host == "" {
		return ""
	}
	return cfg.Origin.Scheme + "://" + cfg.Origin.Host
}

// newFetchClient builds the resilient client. The candidate list is
// resolved once here and reused for the life of the command.
func newFetchClient(cfg *config.Config) *fetch.Client {
	candidates := endpoint.Candidates(cfg.Backend, endpoint.Origin{
		Scheme: cfg.Origin.Scheme,
		Host:   cfg.Origin.Host,
	})
	return fetch.New(fetch.StaticCandidates(candidates), originURL(cfg), cfg.Timeout())
}

// newService builds the content service used by browse and export.
func newService(cfg *config.Config) *content.Service {
	return content.NewService(newFetchClient(cfg))
}
