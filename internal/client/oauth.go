package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
	"golang.org/x/oauth2"
)

// OAuthClient implements jamendo.OAuthClient.
type OAuthClient struct {
	requester    *requester
	clientSecret string
	baseURL      string
}

// NewOAuthClient creates a new OAuth client.
func NewOAuthClient(r *requester, clientSecret, baseURL string) *OAuthClient {
	return &OAuthClient{
		requester:    r,
		clientSecret: clientSecret,
		baseURL:      baseURL,
	}
}

// Authorize requests the authorize page and returns the URL the API
// redirected to, typically the login page to present to the user.
func (c *OAuthClient) Authorize(ctx context.Context, params jamendo.Params) (string, error) {
	query, err := c.withClientID(params)
	if err != nil {
		return "", err
	}

	resp, err := c.requester.httpClient.Get(ctx, constants.PathOAuthAuthorize, query)
	if err != nil {
		return "", fmt.Errorf("authorizing: %w", err)
	}

	return resp.URL, nil
}

// AuthorizeURL builds the authorize URL without any network I/O.
func (c *OAuthClient) AuthorizeURL(params jamendo.Params) (string, error) {
	query, err := params.Flatten()
	if err != nil {
		return "", err
	}

	state := query.Get(jamendo.ParamState)
	query.Del(jamendo.ParamState)
	query.Del(jamendo.ParamClientID)
	query.Del(jamendo.ParamResponseType)

	opts := make([]oauth2.AuthCodeOption, 0, len(query))
	for key := range query {
		opts = append(opts, oauth2.SetAuthURLParam(key, query.Get(key)))
	}

	return c.OAuth2Config("").AuthCodeURL(state, opts...), nil
}

// Grant exchanges an authorization code for a token.
func (c *OAuthClient) Grant(ctx context.Context, params jamendo.Params) (*jamendo.Token, error) {
	if c.clientSecret == "" {
		return nil, &jamendo.ConfigurationError{Field: jamendo.ParamClientSecret, Err: jamendo.ErrClientSecretRequired}
	}

	if !params.Has(jamendo.ParamCode) {
		return nil, &jamendo.ParameterError{Param: jamendo.ParamCode, Err: jamendo.ErrCodeRequired}
	}

	return c.exchange(ctx, params.With(jamendo.ParamGrantType, constants.GrantTypeAuthorizationCode))
}

// Refresh exchanges a refresh token for a new token.
func (c *OAuthClient) Refresh(ctx context.Context, refreshToken string) (*jamendo.Token, error) {
	if c.clientSecret == "" {
		return nil, &jamendo.ConfigurationError{Field: jamendo.ParamClientSecret, Err: jamendo.ErrClientSecretRequired}
	}

	if refreshToken == "" {
		return nil, &jamendo.ParameterError{Param: jamendo.ParamRefreshToken, Err: jamendo.ErrRefreshTokenRequired}
	}

	return c.exchange(ctx, jamendo.Params{
		jamendo.ParamGrantType:    constants.GrantTypeRefreshToken,
		jamendo.ParamRefreshToken: refreshToken,
	})
}

// OAuth2Config returns a golang.org/x/oauth2 configuration for the Jamendo
// OAuth endpoints.
func (c *OAuthClient) OAuth2Config(redirectURL string, scopes ...string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.requester.clientID,
		ClientSecret: c.clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.baseURL + constants.PathOAuthAuthorize,
			TokenURL:  c.baseURL + constants.PathOAuthGrant,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

func (c *OAuthClient) exchange(ctx context.Context, params jamendo.Params) (*jamendo.Token, error) {
	form, err := c.withClientID(params)
	if err != nil {
		return nil, err
	}

	form.Set(jamendo.ParamClientSecret, c.clientSecret)

	resp, err := c.requester.httpClient.PostForm(ctx, constants.PathOAuthGrant, form)
	if err != nil {
		return nil, fmt.Errorf("granting token: %w", err)
	}

	return decodeToken(resp.StatusCode, resp.Body)
}

func (c *OAuthClient) withClientID(params jamendo.Params) (url.Values, error) {
	values, err := params.Flatten()
	if err != nil {
		return nil, err
	}

	values.Set(jamendo.ParamClientID, c.requester.clientID)

	return values, nil
}

// decodeToken decodes a grant response. Error bodies come either as an
// OAuth error object or as the API's headers block.
func decodeToken(statusCode int, body []byte) (*jamendo.Token, error) {
	var envelope struct {
		jamendo.Token

		Error            string           `json:"error"`
		ErrorDescription string           `json:"error_description"`
		Headers          *jamendo.Headers `json:"headers"`
	}

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("%w: status %d: %s", jamendo.ErrInvalidResponseBody, statusCode, excerpt(body))
	}

	if envelope.Headers != nil && !envelope.Headers.OK() {
		return nil, fmt.Errorf("granting token: %w", envelope.Headers.Err())
	}

	if envelope.Error != "" {
		message := envelope.Error
		if envelope.ErrorDescription != "" {
			message += ": " + envelope.ErrorDescription
		}

		return nil, fmt.Errorf("granting token: %w", &jamendo.APIError{Code: statusCode, Message: message})
	}

	if envelope.AccessToken == "" && statusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("granting token: %w", &jamendo.APIError{Code: statusCode, Message: http.StatusText(statusCode)})
	}

	token := envelope.Token
	token.IssuedAt = time.Now()
	token.Raw = json.RawMessage(body)

	return &token, nil
}
