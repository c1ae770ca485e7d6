package client

import (
	"context"

	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
)

// DiscoveryClient implements jamendo.DiscoveryClient.
type DiscoveryClient struct {
	requester *requester
}

// NewDiscoveryClient creates a new discovery client.
func NewDiscoveryClient(r *requester) *DiscoveryClient {
	return &DiscoveryClient{requester: r}
}

// Concerts implements jamendo.DiscoveryClient.Concerts.
func (c *DiscoveryClient) Concerts(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathConcerts, params)
}

// Reviews implements jamendo.DiscoveryClient.Reviews.
func (c *DiscoveryClient) Reviews(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathReviews, params)
}

// ReviewsAlbums implements jamendo.DiscoveryClient.ReviewsAlbums.
func (c *DiscoveryClient) ReviewsAlbums(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathReviewsAlbums, params)
}

// Radios implements jamendo.DiscoveryClient.Radios.
func (c *DiscoveryClient) Radios(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathRadios, params)
}

// RadiosStream implements jamendo.DiscoveryClient.RadiosStream.
func (c *DiscoveryClient) RadiosStream(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathRadiosStream, params)
}

// Autocomplete implements jamendo.DiscoveryClient.Autocomplete.
func (c *DiscoveryClient) Autocomplete(ctx context.Context, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, constants.PathAutocomplete, params)
}
