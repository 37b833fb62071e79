package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/cptzbik/halfmaraton/config"
	"github.com/cptzbik/halfmaraton/pkg/deepseek"
	"github.com/cptzbik/halfmaraton/pkg/openai"
	"github.com/cptzbik/halfmaraton/pkg/qwen"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers
// filtered out. Providers that fail to initialize are skipped instead of
// failing the entire service.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}

	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			fmt.Printf("Warning: failed to initialize provider %s (priority %d): %v\n", p.Name, p.Priority, err)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("%w: all configured providers failed to initialize", ErrNoProvidersConfigured)
	}

	return providers, nil
}

// createProvider builds a single Provider instance from its config entry
func createProvider(p config.ProviderConfig) (Provider, error) {
	timeout := parseTimeout(p.Timeout)

	switch strings.ToLower(p.Name) {
	case "openai":
		client, err := openai.New(openai.Config{
			APIKey:     p.APIKey,
			Model:      p.Model,
			BaseURL:    p.BaseURL,
			HTTPClient: &http.Client{Timeout: timeout},
		})
		if err != nil {
			return nil, err
		}
		return NewOpenAIAdapter(client), nil

	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:  p.APIKey,
			Model:   p.Model,
			BaseURL: p.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return NewDeepSeekAdapter(client), nil

	case "qwen":
		client, err := qwen.New(qwen.Config{
			APIKey:     p.APIKey,
			Model:      p.Model,
			BaseURL:    p.BaseURL,
			HTTPClient: &http.Client{Timeout: timeout},
		})
		if err != nil {
			return nil, err
		}
		return NewQwenAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", p.Name)
	}
}

func parseTimeout(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return openai.DefaultTimeout
	}
	return d
}
