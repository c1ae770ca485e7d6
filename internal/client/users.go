package client

import (
	"context"

	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
)

// UsersClient implements jamendo.UsersClient.
type UsersClient struct {
	requester *requester
}

// NewUsersClient creates a new users client.
func NewUsersClient(r *requester) *UsersClient {
	return &UsersClient{requester: r}
}

// Users implements jamendo.UsersClient.Users.
func (c *UsersClient) Users(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathUsers, params)
}

// UsersArtists implements jamendo.UsersClient.UsersArtists.
func (c *UsersClient) UsersArtists(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathUsersArtists, params)
}

// UsersAlbums implements jamendo.UsersClient.UsersAlbums.
func (c *UsersClient) UsersAlbums(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathUsersAlbums, params)
}

// UsersTracks implements jamendo.UsersClient.UsersTracks.
func (c *UsersClient) UsersTracks(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathUsersTracks, params)
}

// UsersFavoritesArtists lists the artists a user is a fan of.
func (c *UsersClient) UsersFavoritesArtists(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathUsersArtists, favorites(params))
}

// UsersFavoritesAlbums lists a user's favorite albums.
func (c *UsersClient) UsersFavoritesAlbums(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathUsersAlbums, favorites(params))
}

// UsersFavoritesTracks lists a user's favorite tracks.
func (c *UsersClient) UsersFavoritesTracks(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathUsersTracks, favorites(params))
}

// favorites copies params with relation forced to fan, overriding any caller value.
func favorites(params jamendo.Params) jamendo.Params {
	return params.With(jamendo.ParamRelation, jamendo.RelationFan)
}
