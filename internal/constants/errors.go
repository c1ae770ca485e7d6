package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrInvalidBoolValue  = errors.New("value must be 'true' or 'false'")
	ErrNoClientIDSetting = errors.New("no client id configured, use 'jamendo config set client_id <id>' or JAMENDO_CLIENT_ID")
)

// Command errors.
var (
	ErrInvalidParamFormat  = errors.New("invalid parameter format, expected key=value")
	ErrUnknownOutputFormat = errors.New("unknown output format")
	ErrWriteRejected       = errors.New("write request rejected by the API")
)
