package config

import (
	_ "embed"
)

//go:embed wcpss.yaml
var wcpssYAML []byte

// EmbeddedProvider serves the Wake County school calendars compiled into the binary
type EmbeddedProvider struct{}

// NewEmbeddedProvider creates a provider for the built-in WCPSS data
func NewEmbeddedProvider() *EmbeddedProvider {
	return &EmbeddedProvider{}
}

// LoadConfig parses the embedded data
func (e *EmbeddedProvider) LoadConfig() (*ConfigData, error) {
	return parseYAML(wcpssYAML)
}

func (e *EmbeddedProvider) IsReadOnly() bool { return true }
func (e *EmbeddedProvider) Close() error     { return nil }

// Default returns the built-in WCPSS configuration
func Default() (*ConfigData, error) {
	return NewEmbeddedProvider().LoadConfig()
}
