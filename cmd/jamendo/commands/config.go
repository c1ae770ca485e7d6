package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration.
type Config struct {
	// Application credentials
	ClientID     string `json:"client_id,omitempty"     yaml:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty" yaml:"client_secret,omitempty"`

	// Endpoint settings
	Protocol          string `json:"protocol,omitempty"    yaml:"protocol,omitempty"`
	APIVersion        string `json:"api_version,omitempty" yaml:"api_version,omitempty"`
	BaseURL           string `json:"base_url,omitempty"    yaml:"base_url,omitempty"`
	Retry             bool   `json:"retry"                 yaml:"retry"`
	SkipSSLValidation bool   `json:"skip_ssl_validation"   yaml:"skip_ssl_validation"`

	// Global settings
	Output  string `json:"output,omitempty"   yaml:"output,omitempty"`
	LogFile string `json:"log_file,omitempty" yaml:"log_file,omitempty"`

	// Saved user authorization
	AccessToken    string     `json:"access_token,omitempty"     yaml:"access_token,omitempty"`
	RefreshToken   string     `json:"refresh_token,omitempty"    yaml:"refresh_token,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty" yaml:"token_expires_at,omitempty"`
}

// configSetters maps settable keys to their handlers.
var configSetters = map[string]func(*Config, string) error{
	"client_id":     func(c *Config, v string) error { c.ClientID = v; return nil },
	"client_secret": func(c *Config, v string) error { c.ClientSecret = v; return nil },
	"protocol":      func(c *Config, v string) error { c.Protocol = v; return nil },
	"api_version":   func(c *Config, v string) error { c.APIVersion = v; return nil },
	"base_url":      func(c *Config, v string) error { c.BaseURL = v; return nil },
	"output":        func(c *Config, v string) error { c.Output = v; return nil },
	"log_file":      func(c *Config, v string) error { c.LogFile = v; return nil },
	"access_token":  func(c *Config, v string) error { c.AccessToken = v; return nil },
	"refresh_token": func(c *Config, v string) error { c.RefreshToken = v; return nil },
	"retry": func(c *Config, v string) error {
		b, err := parseBoolValue(v)
		c.Retry = b

		return err
	},
	"skip_ssl_validation": func(c *Config, v string) error {
		b, err := parseBoolValue(v)
		c.SkipSSLValidation = b

		return err
	},
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Jamendo CLI configuration including credentials and saved tokens",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	var showSecrets bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if !showSecrets {
				config = maskSecrets(config)
			}

			out := cmd.OutOrStdout()

			switch outputFormat() {
			case constants.FormatJSON:
				return writeJSON(out, config)
			case constants.FormatYAML:
				return writeYAML(out, config)
			default:
				return displayConfigTable(out, config)
			}
		},
	}

	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "display secrets and tokens in clear text")

	return cmd
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + configKeysList(),
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config := loadConfig()

			err := setConfigValue(config, key, value)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), "Set", key, displayValue(key, value))
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value. Keys: " + configKeysList(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			config := loadConfig()

			err := unsetConfigValue(config, key)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), "Unset", key, "")
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), "Cleared", "all configuration", "")
		},
	}
}

func loadConfig() *Config {
	config := &Config{
		ClientID:          viper.GetString("client_id"),
		ClientSecret:      viper.GetString("client_secret"),
		Protocol:          viper.GetString("protocol"),
		APIVersion:        viper.GetString("api_version"),
		BaseURL:           viper.GetString("base_url"),
		Retry:             viper.GetBool("retry"),
		SkipSSLValidation: viper.GetBool("skip_ssl_validation"),
		Output:            viper.GetString("output"),
		LogFile:           viper.GetString("log_file"),
		AccessToken:       viper.GetString("access_token"),
		RefreshToken:      viper.GetString("refresh_token"),
	}

	if viper.IsSet("token_expires_at") {
		expiresAt := viper.GetTime("token_expires_at")
		if !expiresAt.IsZero() {
			config.TokenExpiresAt = &expiresAt
		}
	}

	return config
}

// configFilePath returns the file in use, or the default location with its
// directory created.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(home, constants.ConfigDirName)

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func setConfigValue(config *Config, key, value string) error {
	setter, ok := configSetters[key]
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return setter(config, value)
}

func unsetConfigValue(config *Config, key string) error {
	if key == "token_expires_at" {
		config.TokenExpiresAt = nil

		return nil
	}

	setter, ok := configSetters[key]
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	// Booleans reset to false, strings to empty.
	err := setter(config, "")
	if errors.Is(err, constants.ErrInvalidBoolValue) {
		return setter(config, "false")
	}

	return err
}

func parseBoolValue(value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %q", constants.ErrInvalidBoolValue, value)
	}

	return b, nil
}

func configKeysList() string {
	keys := make([]string, 0, len(configSetters))
	for key := range configSetters {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return strings.Join(keys, ", ")
}

func isSecretKey(key string) bool {
	switch key {
	case "client_secret", "access_token", "refresh_token":
		return true
	default:
		return false
	}
}

func displayValue(key, value string) string {
	if isSecretKey(key) {
		return constants.MaskedSecret
	}

	return value
}

func maskSecrets(config *Config) *Config {
	masked := *config

	if masked.ClientSecret != "" {
		masked.ClientSecret = constants.MaskedSecret
	}

	if masked.AccessToken != "" {
		masked.AccessToken = constants.MaskedSecret
	}

	if masked.RefreshToken != "" {
		masked.RefreshToken = constants.MaskedSecret
	}

	return &masked
}

func displayConfigTable(out io.Writer, config *Config) error {
	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	_ = table.Append([]string{"Client ID", orNotAvailable(config.ClientID)})
	_ = table.Append([]string{"Client Secret", orNotAvailable(config.ClientSecret)})
	_ = table.Append([]string{"Protocol", orNotAvailable(config.Protocol)})
	_ = table.Append([]string{"API Version", orNotAvailable(config.APIVersion)})

	if config.BaseURL != "" {
		_ = table.Append([]string{"Base URL", config.BaseURL})
	}

	_ = table.Append([]string{"Retry", strconv.FormatBool(config.Retry)})
	_ = table.Append([]string{"Skip SSL Validation", strconv.FormatBool(config.SkipSSLValidation)})
	_ = table.Append([]string{"Output", orNotAvailable(config.Output)})
	_ = table.Append([]string{"Log File", orNotAvailable(config.LogFile)})
	_ = table.Append([]string{"Access Token", orNotAvailable(config.AccessToken)})
	_ = table.Append([]string{"Refresh Token", orNotAvailable(config.RefreshToken)})

	if config.TokenExpiresAt != nil {
		_ = table.Append([]string{"Token Expires At", config.TokenExpiresAt.Format(time.RFC3339)})
	}

	_, _ = io.WriteString(out, "Configuration:\n")

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func outputConfigUpdateResult(out io.Writer, action, key, value string) error {
	result := map[string]string{
		"action": action,
		"key":    key,
	}

	if value != "" {
		result["value"] = value
	}

	switch outputFormat() {
	case constants.FormatJSON:
		return writeJSON(out, result)
	case constants.FormatYAML:
		return writeYAML(out, result)
	default:
		table := tablewriter.NewWriter(out)
		table.Header("Property", "Value")
		_ = table.Append([]string{"Action", action})
		_ = table.Append([]string{"Key", key})

		if value != "" {
			_ = table.Append([]string{"Value", value})
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
