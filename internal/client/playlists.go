package client

import (
	"context"

	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
)

// PlaylistsClient implements jamendo.PlaylistsClient.
type PlaylistsClient struct {
	requester *requester
}

// NewPlaylistsClient creates a new playlists client.
func NewPlaylistsClient(r *requester) *PlaylistsClient {
	return &PlaylistsClient{requester: r}
}

// Playlists implements jamendo.PlaylistsClient.Playlists.
func (c *PlaylistsClient) Playlists(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathPlaylists, params)
}

// PlaylistsTracks implements jamendo.PlaylistsClient.PlaylistsTracks.
func (c *PlaylistsClient) PlaylistsTracks(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathPlaylistsTracks, params)
}

// PlaylistsFile implements jamendo.PlaylistsClient.PlaylistsFile.
func (c *PlaylistsClient) PlaylistsFile(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathPlaylistsFile, params)
}
