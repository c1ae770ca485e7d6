package jamendo_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
	"github.com/stretchr/testify/assert"
)

var errDialTimeout = errors.New("dial tcp: i/o timeout")

func TestErrors_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "configuration",
			err:      &jamendo.ConfigurationError{Field: "client_id", Err: jamendo.ErrClientIDRequired},
			expected: "configuration error: client_id: client_id is required",
		},
		{
			name:     "parameter",
			err:      &jamendo.ParameterError{Param: "code", Err: jamendo.ErrCodeRequired},
			expected: "parameter error: code: code is required",
		},
		{
			name:     "transport",
			err:      &jamendo.TransportError{Method: "GET", URL: "http://api.jamendo.com/v3.0/tracks", Attempts: 2, Err: errDialTimeout},
			expected: "transport error: GET http://api.jamendo.com/v3.0/tracks failed after 2 attempt(s): dial tcp: i/o timeout",
		},
		{
			name:     "api",
			err:      &jamendo.APIError{Code: 5, Message: "invalid client id"},
			expected: "jamendo API error 5: invalid client id",
		},
		{
			name:     "api with warnings",
			err:      &jamendo.APIError{Code: 4, Message: "missing", Warnings: "deprecated"},
			expected: "jamendo API error 4: missing (warnings: deprecated)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrors_Helpers(t *testing.T) {
	t.Parallel()

	configErr := fmt.Errorf("wrapped: %w", &jamendo.ConfigurationError{Field: "client_secret", Err: jamendo.ErrClientSecretRequired})
	assert.True(t, jamendo.IsConfigurationError(configErr))
	assert.False(t, jamendo.IsParameterError(configErr))
	assert.ErrorIs(t, configErr, jamendo.ErrClientSecretRequired)

	paramErr := fmt.Errorf("wrapped: %w", &jamendo.ParameterError{Param: "datebetween", Err: jamendo.ErrInvalidDateBetween})
	assert.True(t, jamendo.IsParameterError(paramErr))
	assert.ErrorIs(t, paramErr, jamendo.ErrInvalidDateBetween)

	transportErr := fmt.Errorf("getting /tracks: %w", &jamendo.TransportError{Attempts: 1, Err: errDialTimeout})
	assert.True(t, jamendo.IsTransportError(transportErr))
	assert.ErrorIs(t, transportErr, errDialTimeout)
	assert.False(t, jamendo.IsTransportError(errDialTimeout))

	assert.True(t, jamendo.IsInvalidClientID(&jamendo.APIError{Code: jamendo.CodeInvalidClientID}))
	assert.False(t, jamendo.IsInvalidClientID(&jamendo.APIError{Code: jamendo.CodeRateLimitExceeded}))
	assert.True(t, jamendo.IsRateLimited(fmt.Errorf("x: %w", &jamendo.APIError{Code: jamendo.CodeRateLimitExceeded})))
	assert.False(t, jamendo.IsRateLimited(nil))
}
