package llmprovider

import "errors"

var (
	// ErrNoProvidersConfigured indicates no enabled providers are available
	ErrNoProvidersConfigured = errors.New("no LLM providers configured")

	// ErrAllProvidersFailed indicates every provider in the chain failed
	ErrAllProvidersFailed = errors.New("all LLM providers failed")

	// ErrEmptyResponse indicates the provider returned no usable text
	ErrEmptyResponse = errors.New("empty response from LLM provider")
)
