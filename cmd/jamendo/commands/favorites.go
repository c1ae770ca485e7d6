package commands

import (
	"context"

	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
	"github.com/spf13/cobra"
)

type favoritesFunc func(jamendo.Client, context.Context, jamendo.Params) (*jamendo.Result, error)

var favoritesMethods = map[string]favoritesFunc{
	constants.PathUsersArtists: jamendo.Client.UsersFavoritesArtists,
	constants.PathUsersAlbums:  jamendo.Client.UsersFavoritesAlbums,
	constants.PathUsersTracks:  jamendo.Client.UsersFavoritesTracks,
}

// NewFavoritesCommand creates the favorites command group.
func NewFavoritesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List a user's favorites",
		Long:  "List the artists, albums or tracks a user is a fan of",
	}

	for _, endpoint := range constants.FavoriteEndpoints {
		cmd.AddCommand(newFavoritesSubcommand(endpoint))
	}

	return cmd
}

func newFavoritesSubcommand(endpoint constants.Endpoint) *cobra.Command {
	var (
		rawParams []string
		userName  string
	)

	cmd := &cobra.Command{
		Use:   endpoint.Name + " [USER_ID]",
		Short: endpoint.Short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				params["id"] = args[0]
			}

			if userName != "" {
				params["name"] = userName
			}

			client, cleanup, err := createClient()
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := favoritesMethods[endpoint.Path](client, cmd.Context(), params)
			if err != nil {
				return err
			}

			return outputResult(cmd, result)
		},
	}

	cmd.Flags().StringArrayVarP(&rawParams, "param", "p", nil, paramFlagUsage)
	cmd.Flags().StringVar(&userName, "name", "", "look the user up by name instead of id")

	return cmd
}
