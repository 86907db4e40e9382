// Package trelloclient provides the main entry point for creating Trello API clients
package trelloclient

import (
	"strings"

	"github.com/fourleaf-io/trello-client/internal/client"
	"github.com/fourleaf-io/trello-client/internal/constants"
	"github.com/fourleaf-io/trello-client/pkg/trello"
)

// New creates a new Trello API client from config, normalizing the endpoint
// and filling in library defaults.
func New(config *trello.Config) (trello.Client, error) {
	if config == nil {
		return nil, trello.ErrConfigRequired
	}

	if config.Key == "" {
		return nil, trello.ErrKeyRequired
	}

	// Normalize the API endpoint
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	if config.Version == "" {
		config.Version = constants.DefaultAPIVersion
	}

	if config.Identifier == "" {
		config.Identifier = constants.DefaultIdentifier
	}

	return client.New(config)
}

// NewWithKeyToken creates a new client with an application key and member
// token, using library defaults for everything else. Error responses are
// fatal: 4xx/5xx come back as *trello.APIError.
func NewWithKeyToken(key, token string) (trello.Client, error) {
	return New(&trello.Config{
		Key:         key,
		Token:       token,
		FatalErrors: true,
	})
}

// NewWithKey creates a new client with just an application key (no member
// token), suitable for public resources.
func NewWithKey(key string) (trello.Client, error) {
	return NewWithKeyToken(key, "")
}

// NewFromEnv creates a new client configured from TRELLO_* environment
// variables and the default config file location.
func NewFromEnv() (trello.Client, error) {
	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}

	return New(config)
}
