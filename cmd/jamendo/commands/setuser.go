package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/fivetwenty-io/jamendo/internal/auth"
	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
	"github.com/spf13/cobra"
)

type writeFunc func(jamendo.Client, context.Context, jamendo.Params) (*jamendo.WriteResult, error)

var writeMethods = map[string]writeFunc{
	constants.PathSetUserFan:      jamendo.Client.SetUserFan,
	constants.PathSetUserFavorite: jamendo.Client.SetUserFavorite,
	constants.PathSetUserLike:     jamendo.Client.SetUserLike,
	constants.PathSetUserDislike:  jamendo.Client.SetUserDislike,
}

// NewSetUserCommand creates the setuser command group.
func NewSetUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setuser",
		Short: "Update the authorized user's relations",
		Long: "Become a fan of an artist or mark tracks as favorite, liked or disliked.\n" +
			"Requires an access token from 'jamendo grant --save' or --access-token.",
	}

	for _, endpoint := range constants.WriteEndpoints {
		cmd.AddCommand(newSetUserSubcommand(endpoint))
	}

	return cmd
}

// configTokenPersister saves refreshed tokens to the configuration file.
type configTokenPersister struct{}

func (configTokenPersister) SaveToken(token *jamendo.Token) error {
	return saveToken(token)
}

// savedAccessToken returns the saved access token, refreshing it first when
// it has expired or is about to. An empty string means no token is saved.
func savedAccessToken(cmd *cobra.Command, client jamendo.Client) (string, error) {
	ctx := cmd.Context()

	config := loadConfig()
	if config.AccessToken == "" {
		return "", nil
	}

	initial := &auth.Token{
		AccessToken:  config.AccessToken,
		RefreshToken: config.RefreshToken,
	}

	if config.TokenExpiresAt != nil {
		initial.ExpiresAt = *config.TokenExpiresAt
	}

	manager := auth.NewTokenManager(client, configTokenPersister{}, initial)

	if initial.Valid() && initial.RefreshToken != "" && manager.IsTokenExpiringSoon(constants.TokenRefreshAhead) {
		err := manager.RefreshToken(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to refresh access token: %w", err)
		}
	}

	token, err := manager.AccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get access token: %w", err)
	}

	if expiry := manager.GetTokenExpiry(); !expiry.Equal(initial.ExpiresAt) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s Access token refreshed, expires at %s\n",
			constants.CheckMarkSymbol, expiry.Format(time.RFC3339))
	}

	return token, nil
}

// idParam returns the required param identifying the target of a write.
func idParam(endpoint constants.Endpoint) string {
	for _, key := range endpoint.Required {
		if key != "access_token" {
			return key
		}
	}

	return "id"
}

func newSetUserSubcommand(endpoint constants.Endpoint) *cobra.Command {
	var (
		rawParams   []string
		accessToken string
	)

	target := idParam(endpoint)

	cmd := &cobra.Command{
		Use:   endpoint.Name + " " + target,
		Short: endpoint.Short,
		Long:  endpoint.Short + " (POST " + endpoint.Path + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}

			params[target] = args[0]

			client, cleanup, err := createClient()
			if err != nil {
				return err
			}
			defer cleanup()

			if accessToken == "" {
				accessToken, err = savedAccessToken(cmd, client)
				if err != nil {
					return err
				}
			}

			if accessToken != "" {
				params["access_token"] = accessToken
			}

			result, err := writeMethods[endpoint.Path](client, cmd.Context(), params)
			if err != nil {
				return err
			}

			return outputWriteResult(cmd, result)
		},
	}

	cmd.Flags().StringArrayVarP(&rawParams, "param", "p", nil, paramFlagUsage)
	cmd.Flags().StringVar(&accessToken, "access-token", "", "user access token (default is the saved token)")

	return cmd
}
