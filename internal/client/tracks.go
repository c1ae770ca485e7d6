package client

import (
	"context"

	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
)

// TracksClient implements jamendo.TracksClient.
type TracksClient struct {
	requester *requester
}

// NewTracksClient creates a new tracks client.
func NewTracksClient(r *requester) *TracksClient {
	return &TracksClient{requester: r}
}

// Tracks implements jamendo.TracksClient.Tracks.
func (c *TracksClient) Tracks(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathTracks, params)
}

// TracksFile implements jamendo.TracksClient.TracksFile.
func (c *TracksClient) TracksFile(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathTracksFile, params)
}
