package client

import (
	"context"

	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
)

// SetUserClient implements jamendo.WriteClient.
type SetUserClient struct {
	requester *requester
}

// NewSetUserClient creates a new setuser client.
func NewSetUserClient(r *requester) *SetUserClient {
	return &SetUserClient{requester: r}
}

// SetUserFan makes the token's user a fan of artist_id.
func (c *SetUserClient) SetUserFan(ctx context.Context, params jamendo.Params) (*jamendo.WriteResult, error) {
	return c.write(ctx, constants.PathSetUserFan, params)
}

// SetUserFavorite adds track_id to the token's user favorites.
func (c *SetUserClient) SetUserFavorite(ctx context.Context, params jamendo.Params) (*jamendo.WriteResult, error) {
	return c.write(ctx, constants.PathSetUserFavorite, params)
}

// SetUserLike records a like of track_id.
func (c *SetUserClient) SetUserLike(ctx context.Context, params jamendo.Params) (*jamendo.WriteResult, error) {
	return c.write(ctx, constants.PathSetUserLike, params)
}

// SetUserDislike records a dislike of track_id.
func (c *SetUserClient) SetUserDislike(ctx context.Context, params jamendo.Params) (*jamendo.WriteResult, error) {
	return c.write(ctx, constants.PathSetUserDislike, params)
}

func (c *SetUserClient) write(ctx context.Context, path string, params jamendo.Params) (*jamendo.WriteResult, error) {
	err := validateRequired(path, params)
	if err != nil {
		return nil, err
	}

	return c.requester.postForm(ctx, path, params)
}

// validateRequired checks the keys the write endpoint table declares for path.
func validateRequired(path string, params jamendo.Params) error {
	endpoint, ok := constants.LookupWriteEndpoint(path)
	if !ok {
		return nil
	}

	for _, key := range endpoint.Required {
		if params.Has(key) {
			continue
		}

		if key == jamendo.ParamAccessToken {
			return &jamendo.ParameterError{Param: key, Err: jamendo.ErrAccessTokenRequired}
		}

		return &jamendo.ParameterError{Param: key, Err: jamendo.ErrParamRequired}
	}

	return nil
}
