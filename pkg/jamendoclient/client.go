// Package jamendoclient provides the main entry point for creating Jamendo API clients
package jamendoclient

import (
	"fmt"

	"github.com/fivetwenty-io/jamendo/internal/client"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
)

// New creates a new Jamendo API client. The config is copied, so the caller
// may reuse or modify it afterwards.
func New(config *jamendo.Config) (jamendo.Client, error) {
	if config == nil {
		return nil, &jamendo.ConfigurationError{Field: "config", Err: jamendo.ErrConfigRequired}
	}

	resolved := *config

	if resolved.Protocol == "" {
		resolved.Protocol = jamendo.DefaultProtocol
	}

	if resolved.APIVersion == "" {
		resolved.APIVersion = jamendo.DefaultAPIVersion
	}

	c, err := client.New(&resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithClientID creates a read-only client with default settings.
func NewWithClientID(clientID string) (jamendo.Client, error) {
	return New(&jamendo.Config{ClientID: clientID})
}

// NewWithCredentials creates a client able to run the OAuth grant flow.
func NewWithCredentials(clientID, clientSecret string) (jamendo.Client, error) {
	return New(&jamendo.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}
