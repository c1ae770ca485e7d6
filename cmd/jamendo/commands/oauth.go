package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewAuthorizeCommand creates the authorize command.
func NewAuthorizeCommand() *cobra.Command {
	var (
		rawParams   []string
		redirectURI string
		state       string
		scope       string
		offline     bool
	)

	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "Start the OAuth authorization flow",
		Long: "Request the authorize page and print the URL the user should open.\n" +
			"With --offline the URL is built locally without contacting the API.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}

			setIfNotEmpty(params, jamendo.ParamRedirectURI, redirectURI)
			setIfNotEmpty(params, jamendo.ParamState, state)
			setIfNotEmpty(params, jamendo.ParamScope, scope)

			client, cleanup, err := createClient()
			if err != nil {
				return err
			}
			defer cleanup()

			var authURL string

			if offline {
				authURL, err = client.AuthorizeURL(params)
			} else {
				ctx, cancel := context.WithTimeout(cmd.Context(), constants.ShortHTTPTimeout)
				authURL, err = client.Authorize(ctx, params)

				cancel()
			}

			if err != nil {
				return err
			}

			return outputSingleValue(cmd.OutOrStdout(), "url", authURL)
		},
	}

	cmd.Flags().StringArrayVarP(&rawParams, "param", "p", nil, paramFlagUsage)
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "URI the user is sent back to with the code")
	cmd.Flags().StringVar(&state, "state", "", "opaque value echoed back with the code")
	cmd.Flags().StringVar(&scope, "scope", "", "requested scope")
	cmd.Flags().BoolVar(&offline, "offline", false, "build the URL locally instead of following the API redirect")

	return cmd
}

// NewGrantCommand creates the grant command.
func NewGrantCommand() *cobra.Command {
	var (
		code        string
		redirectURI string
		save        bool
	)

	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Exchange an authorization code for an access token",
		Long: "Exchange the code returned by the authorize flow for an access token.\n" +
			"The client secret is read from the configuration or prompted for.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := ensureClientSecret(cmd)
			if err != nil {
				return err
			}

			params := jamendo.Params{}
			setIfNotEmpty(params, jamendo.ParamCode, code)
			setIfNotEmpty(params, jamendo.ParamRedirectURI, redirectURI)

			client, cleanup, err := createClient()
			if err != nil {
				return err
			}
			defer cleanup()

			token, err := client.Grant(cmd.Context(), params)
			if err != nil {
				return err
			}

			return finishToken(cmd, token, save)
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "authorization code")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "redirect URI used when authorizing")
	cmd.Flags().BoolVar(&save, "save", false, "save the tokens to the configuration file")

	return cmd
}

// NewRefreshCommand creates the refresh command.
func NewRefreshCommand() *cobra.Command {
	var (
		refreshToken string
		save         bool
	)

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the access token",
		Long:  "Obtain a new access token using a refresh token (default is the saved one)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := ensureClientSecret(cmd)
			if err != nil {
				return err
			}

			if refreshToken == "" {
				refreshToken = loadConfig().RefreshToken
			}

			client, cleanup, err := createClient()
			if err != nil {
				return err
			}
			defer cleanup()

			token, err := client.Refresh(cmd.Context(), refreshToken)
			if err != nil {
				return err
			}

			return finishToken(cmd, token, save)
		},
	}

	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "refresh token (default is the saved one)")
	cmd.Flags().BoolVar(&save, "save", false, "save the tokens to the configuration file")

	return cmd
}

// ensureClientSecret prompts for the secret when none is configured and
// stdin is a terminal. Otherwise the client reports the missing secret.
func ensureClientSecret(cmd *cobra.Command) error {
	if viper.GetString("client_secret") != "" {
		return nil
	}

	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit in int
	if !term.IsTerminal(fd) {
		return nil
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Client secret: ")

	secret, err := term.ReadPassword(fd)

	_, _ = fmt.Fprintln(cmd.ErrOrStderr())

	if err != nil {
		return fmt.Errorf("failed to read client secret: %w", err)
	}

	viper.Set("client_secret", strings.TrimSpace(string(secret)))

	return nil
}

func finishToken(cmd *cobra.Command, token *jamendo.Token, save bool) error {
	if save {
		err := saveToken(token)
		if err != nil {
			return err
		}
	}

	err := outputToken(cmd.OutOrStdout(), token)
	if err != nil {
		return err
	}

	if save {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s Tokens saved\n", constants.CheckMarkSymbol)
	}

	return nil
}

func saveToken(token *jamendo.Token) error {
	config := loadConfig()
	config.AccessToken = token.AccessToken

	if token.RefreshToken != "" {
		config.RefreshToken = token.RefreshToken
	}

	config.TokenExpiresAt = nil

	if expiry := token.Expiry(); !expiry.IsZero() {
		config.TokenExpiresAt = &expiry
	}

	err := saveConfigStruct(config)
	if err != nil {
		return fmt.Errorf("failed to save tokens: %w", err)
	}

	return nil
}

func outputToken(out io.Writer, token *jamendo.Token) error {
	switch outputFormat() {
	case constants.FormatJSON:
		return writeJSON(out, token)
	case constants.FormatYAML:
		return writeYAML(out, token)
	default:
		table := tablewriter.NewWriter(out)
		table.Header("Property", "Value")
		_ = table.Append([]string{"Access Token", orNotAvailable(token.AccessToken)})
		_ = table.Append([]string{"Token Type", orNotAvailable(token.TokenType)})
		_ = table.Append([]string{"Expires In", strconv.Itoa(token.ExpiresIn)})
		_ = table.Append([]string{"Refresh Token", orNotAvailable(token.RefreshToken)})
		_ = table.Append([]string{"Scope", orNotAvailable(token.Scope)})

		if expiry := token.Expiry(); !expiry.IsZero() {
			_ = table.Append([]string{"Expires At", expiry.Format(time.RFC3339)})
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func outputSingleValue(out io.Writer, key, value string) error {
	switch outputFormat() {
	case constants.FormatJSON:
		return writeJSON(out, map[string]string{key: value})
	case constants.FormatYAML:
		return writeYAML(out, map[string]string{key: value})
	default:
		_, err := fmt.Fprintln(out, value)

		return err
	}
}

func setIfNotEmpty(params jamendo.Params, key, value string) {
	if value != "" {
		params[key] = value
	}
}
