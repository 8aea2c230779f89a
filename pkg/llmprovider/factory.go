package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"chat-with-search/config"
	"chat-with-search/pkg/groq"
	"chat-with-search/pkg/log"
)

// ManagerFactory builds a Manager bound to one credential.
type ManagerFactory func(apiKeyOverride string) (*Manager, error)

// NewManagerFactory returns a ManagerFactory over cfg. Providers are built per
// call so a key entered in the browser is never shared between sessions.
func NewManagerFactory(cfg *config.LLMConfig, l log.Logger) ManagerFactory {
	retryDelay, maxTotal := cfg.Durations()
	return func(apiKeyOverride string) (*Manager, error) {
		providers, err := InitializeProviders(cfg, apiKeyOverride)
		if err != nil {
			return nil, err
		}
		return NewManager(providers, &Config{
			FallbackEnabled: cfg.FallbackEnabled,
			RetryAttempts:   cfg.RetryAttempts,
			RetryDelay:      retryDelay,
			MaxTotalTimeout: maxTotal,
		}, l), nil
	}
}

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// A non-empty apiKeyOverride replaces the configured key of every provider,
// which is how a key typed into the chat page takes precedence over the environment.
func InitializeProviders(cfg *config.LLMConfig, apiKeyOverride string) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	// Filter enabled providers
	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			if apiKeyOverride != "" {
				p.APIKey = apiKeyOverride
			}
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	// Sort by priority (ascending order)
	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	// Skip failed providers instead of failing entirely
	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoProvidersConfigured, strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	switch cfg.Name {
	case ProviderGroq:
		var httpClient *http.Client
		if cfg.Timeout != "" {
			timeout, err := time.ParseDuration(cfg.Timeout)
			if err != nil {
				return nil, fmt.Errorf("provider %s: invalid timeout: %w", cfg.Name, err)
			}
			httpClient = &http.Client{Timeout: timeout}
		}
		client, err := groq.New(groq.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create groq client: %w", err)
		}
		return NewGroqAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
