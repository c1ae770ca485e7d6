package jamendo

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrClientIDRequired     = errors.New("client_id is required")
	ErrClientSecretRequired = errors.New("client_secret is required")
	ErrInvalidProtocol      = errors.New("protocol must be http or https")
	ErrCodeRequired         = errors.New("code is required")
	ErrRefreshTokenRequired = errors.New("refresh_token is required")
	ErrAccessTokenRequired  = errors.New("access_token is required")
	ErrParamRequired        = errors.New("parameter is required")
	ErrInvalidDateBetween   = errors.New("invalid datebetween value")
	ErrUnsupportedParamType = errors.New("unsupported parameter type")
	ErrInvalidResponseBody  = errors.New("invalid response body")
)

// Jamendo API status codes reported in the response headers block.
const (
	CodeSuccess           = 0
	CodeException         = 1
	CodeHTTPMethod        = 2
	CodeType              = 3
	CodeRequiredParameter = 4
	CodeInvalidClientID   = 5
	CodeRateLimitExceeded = 6
	CodeMethodNotFound    = 7
	CodeNeededParameter   = 8
	CodeFormatNotAllowed  = 9
)

// ConfigurationError reports a missing or invalid construction setting.
type ConfigurationError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ParameterError reports a missing or malformed call parameter.
type ParameterError struct {
	Param string
	Err   error
}

// Error implements the error interface.
func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameter error: %s: %v", e.Param, e.Err)
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}

// TransportError reports that no HTTP response was received at all
// (DNS failure, refused connection, timeout). Attempts counts the initial
// try plus the retry, if one was made.
type TransportError struct {
	Method   string
	URL      string
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s failed after %d attempt(s): %v", e.Method, e.URL, e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError represents a nonzero status reported by the Jamendo API.
type APIError struct {
	Code     int    `json:"code"          yaml:"code"`
	Message  string `json:"error_message" yaml:"error_message"`
	Warnings string `json:"warnings"      yaml:"warnings"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Warnings != "" {
		return fmt.Sprintf("jamendo API error %d: %s (warnings: %s)", e.Code, e.Message, e.Warnings)
	}

	return fmt.Sprintf("jamendo API error %d: %s", e.Code, e.Message)
}

// IsConfigurationError checks if the error is a configuration error.
func IsConfigurationError(err error) bool {
	confErr := &ConfigurationError{}

	return errors.As(err, &confErr)
}

// IsParameterError checks if the error is a parameter error.
func IsParameterError(err error) bool {
	paramErr := &ParameterError{}

	return errors.As(err, &paramErr)
}

// IsTransportError checks if the error is a transport error.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsInvalidClientID checks if the API rejected the configured client id.
func IsInvalidClientID(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == CodeInvalidClientID
	}

	return false
}

// IsRateLimited checks if the API reported that the rate limit was exceeded.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == CodeRateLimitExceeded
	}

	return false
}
