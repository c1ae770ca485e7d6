package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/jamendo/cmd/jamendo/commands"
	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "jamendo",
	Short: "Jamendo API v3 CLI",
	Long: `A command-line interface for the Jamendo music API v3.0.

This CLI gives access to tracks, albums, artists, playlists, radios and users,
the OAuth authorization code flow and the setuser write endpoints.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.jamendo/config.yml)")
	flags.String("client-id", "", "application client id")
	flags.String("client-secret", "", "application client secret")
	flags.String("protocol", "", "API protocol, http or https (default http)")
	flags.String("api-version", "", "API version (default v3.0)")
	flags.String("base-url", "", "override the API base URL")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "log HTTP requests and responses")
	flags.Bool("retry", false, "retry once when no response is received")
	flags.Bool("skip-ssl-validation", false, "skip SSL certificate validation")
	flags.String("log-file", "", "write logs to a rotated file instead of stderr")

	_ = flags.MarkHidden("base-url")

	// Bind flags to viper
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("client_id", flags.Lookup("client-id"))
	_ = viper.BindPFlag("client_secret", flags.Lookup("client-secret"))
	_ = viper.BindPFlag("protocol", flags.Lookup("protocol"))
	_ = viper.BindPFlag("api_version", flags.Lookup("api-version"))
	_ = viper.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("retry", flags.Lookup("retry"))
	_ = viper.BindPFlag("skip_ssl_validation", flags.Lookup("skip-ssl-validation"))
	_ = viper.BindPFlag("log_file", flags.Lookup("log-file"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewReadCommands()...)
	rootCmd.AddCommand(commands.NewFavoritesCommand())
	rootCmd.AddCommand(commands.NewSetUserCommand())
	rootCmd.AddCommand(commands.NewAuthorizeCommand())
	rootCmd.AddCommand(commands.NewGrantCommand())
	rootCmd.AddCommand(commands.NewRefreshCommand())
}

func initConfig() {
	// A .env file in the working directory is optional.
	_ = godotenv.Load(constants.DotEnvFile)

	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, constants.ConfigDirName)

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		}

		// Search config in ~/.jamendo/config.yml
		viper.AddConfigPath(configDir)
		viper.SetConfigType(constants.ConfigFileType)
		viper.SetConfigName(constants.ConfigFileName)
	}

	// Read in environment variables that match
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	// If a config file is found, read it in
	err := viper.ReadInConfig()
	if err == nil && viper.GetBool("verbose") {
		_, _ = fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
