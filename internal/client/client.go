package client

import (
	"context"
	"strings"

	"github.com/fivetwenty-io/jamendo/internal/http"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
)

var _ jamendo.Client = (*Client)(nil)

// Client implements the jamendo.Client interface. Resource clients are
// embedded so their methods form the flat endpoint surface.
type Client struct {
	*TracksClient
	*AlbumsClient
	*ArtistsClient
	*PlaylistsClient
	*DiscoveryClient
	*UsersClient
	*SetUserClient
	*OAuthClient

	requester *requester
	baseURL   string
}

// New creates a new Jamendo API client. The config is read once; later
// changes to it have no effect on the client.
func New(config *jamendo.Config) (*Client, error) {
	err := validateConfig(config)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = jamendo.BuildBaseURL(config.Protocol, config.APIVersion)
	}

	httpClient := http.NewClient(baseURL, createHTTPClientOptions(config)...)

	return newClient(httpClient, config.ClientID, config.ClientSecret), nil
}

func newClient(httpClient *http.Client, clientID, clientSecret string) *Client {
	r := newRequester(httpClient, clientID)

	return &Client{
		TracksClient:    NewTracksClient(r),
		AlbumsClient:    NewAlbumsClient(r),
		ArtistsClient:   NewArtistsClient(r),
		PlaylistsClient: NewPlaylistsClient(r),
		DiscoveryClient: NewDiscoveryClient(r),
		UsersClient:     NewUsersClient(r),
		SetUserClient:   NewSetUserClient(r),
		OAuthClient:     NewOAuthClient(r, clientSecret, httpClient.BaseURL()),
		requester:       r,
		baseURL:         httpClient.BaseURL(),
	}
}

func validateConfig(config *jamendo.Config) error {
	if config == nil {
		return &jamendo.ConfigurationError{Field: "config", Err: jamendo.ErrConfigRequired}
	}

	if config.ClientID == "" {
		return &jamendo.ConfigurationError{Field: jamendo.ParamClientID, Err: jamendo.ErrClientIDRequired}
	}

	switch config.Protocol {
	case "", "http", "https":
	default:
		return &jamendo.ConfigurationError{Field: "protocol", Err: jamendo.ErrInvalidProtocol}
	}

	return nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *jamendo.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithRetry(config.Retry),
		http.WithSkipTLSVerify(config.SkipTLSVerify),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// BaseURL returns the API base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a read request against an arbitrary endpoint path.
func (c *Client) Get(ctx context.Context, path string, params jamendo.Params) (*jamendo.Result, error) {
	return c.requester.get(ctx, path, params)
}

// PostForm issues a write request against an arbitrary endpoint path. Keys
// required by known write endpoints are validated first.
func (c *Client) PostForm(ctx context.Context, path string, params jamendo.Params) (*jamendo.WriteResult, error) {
	err := validateRequired(path, params)
	if err != nil {
		return nil, err
	}

	return c.requester.postForm(ctx, path, params)
}

// loggerAdapter adapts jamendo.Logger to http.Logger.
type loggerAdapter struct {
	logger jamendo.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
