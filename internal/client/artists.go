package client

import (
	"context"

	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
)

// ArtistsClient implements jamendo.ArtistsClient.
type ArtistsClient struct {
	requester *requester
}

// NewArtistsClient creates a new artists client.
func NewArtistsClient(r *requester) *ArtistsClient {
	return &ArtistsClient{requester: r}
}

// Artists implements jamendo.ArtistsClient.Artists.
func (c *ArtistsClient) Artists(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathArtists, params)
}

// ArtistAlbums implements jamendo.ArtistsClient.ArtistAlbums.
func (c *ArtistsClient) ArtistAlbums(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathArtistAlbums, params)
}

// ArtistTracks implements jamendo.ArtistsClient.ArtistTracks.
func (c *ArtistsClient) ArtistTracks(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathArtistTracks, params)
}

// ArtistsMusicInfo implements jamendo.ArtistsClient.ArtistsMusicInfo.
func (c *ArtistsClient) ArtistsMusicInfo(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathArtistsMusicInfo, params)
}

// ArtistsLocations implements jamendo.ArtistsClient.ArtistsLocations.
func (c *ArtistsClient) ArtistsLocations(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathArtistsLocations, params)
}
