package client

import (
	"context"

	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
)

// AlbumsClient implements jamendo.AlbumsClient.
type AlbumsClient struct {
	requester *requester
}

// NewAlbumsClient creates a new albums client.
func NewAlbumsClient(r *requester) *AlbumsClient {
	return &AlbumsClient{requester: r}
}

// Albums implements jamendo.AlbumsClient.Albums.
func (c *AlbumsClient) Albums(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathAlbums, params)
}

// AlbumTracks implements jamendo.AlbumsClient.AlbumTracks.
func (c *AlbumsClient) AlbumTracks(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathAlbumTracks, params)
}

// AlbumsFile implements jamendo.AlbumsClient.AlbumsFile.
func (c *AlbumsClient) AlbumsFile(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathAlbumsFile, params)
}

// AlbumsMusicInfo implements jamendo.AlbumsClient.AlbumsMusicInfo.
func (c *AlbumsClient) AlbumsMusicInfo(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathAlbumsMusicInfo, params)
}
