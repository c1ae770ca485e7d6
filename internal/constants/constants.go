package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Configuration locations.
const (
	// ConfigDirName is the directory under $HOME holding the CLI configuration.
	ConfigDirName = ".jamendo"

	// ConfigFileName is the configuration file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the configuration file format.
	ConfigFileType = "yml"

	// EnvPrefix prefixes the environment variables read by the CLI.
	EnvPrefix = "JAMENDO"

	// DotEnvFile is loaded from the working directory when present.
	DotEnvFile = ".env"
)

// HTTP defaults.
const (
	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "jamendo-go/1.0"

	// ShortHTTPTimeout bounds quick CLI operations such as the authorize redirect.
	ShortHTTPTimeout = 10 * time.Second

	// ContentTypeForm is the content type of write and OAuth requests.
	ContentTypeForm = "application/x-www-form-urlencoded"

	// ContentTypeJSON is the accepted response content type.
	ContentTypeJSON = "application/json"
)

// Retry policy.
const (
	// TransportRetryMax is the number of extra attempts made after a transport
	// failure when retries are enabled.
	TransportRetryMax = 1
)

// Saved tokens expiring within this window are refreshed before use.
const TokenRefreshAhead = 5 * time.Minute

// OAuth grant types.
const (
	GrantTypeAuthorizationCode = "authorization_code"
	GrantTypeRefreshToken      = "refresh_token"
)

// UI and display constants.
const (
	// NotAvailable is displayed for missing values.
	NotAvailable = "N/A"

	// MaskedSecret replaces secrets in displayed configuration.
	MaskedSecret = "***"

	// CheckMarkSymbol marks successful operations.
	CheckMarkSymbol = "✓"
)

// Format constants.
const (
	// FormatTable is the default CLI output format.
	FormatTable = "table"

	// FormatJSON represents JSON output format.
	FormatJSON = "json"

	// FormatYAML represents YAML output format.
	FormatYAML = "yaml"
)

// Logging defaults.
const (
	// LogMaxSizeMB is the size at which the CLI log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files kept.
	LogMaxBackups = 3

	// LogMaxAgeDays is the retention of rotated log files.
	LogMaxAgeDays = 28
)
