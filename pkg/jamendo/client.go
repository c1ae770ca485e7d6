package jamendo

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

// API host and defaults used to derive the base URL.
const (
	APIHost           = "api.jamendo.com"
	DefaultProtocol   = "http"
	DefaultAPIVersion = "v3.0"
)

// TracksClient provides access to the track endpoints.
type TracksClient interface {
	Tracks(ctx context.Context, params Params) (*Result, error)
	TracksFile(ctx context.Context, params Params) (*Result, error)
}

// AlbumsClient provides access to the album endpoints.
type AlbumsClient interface {
	Albums(ctx context.Context, params Params) (*Result, error)
	AlbumTracks(ctx context.Context, params Params) (*Result, error)
	AlbumsFile(ctx context.Context, params Params) (*Result, error)
	AlbumsMusicInfo(ctx context.Context, params Params) (*Result, error)
}

// ArtistsClient provides access to the artist endpoints.
type ArtistsClient interface {
	Artists(ctx context.Context, params Params) (*Result, error)
	ArtistAlbums(ctx context.Context, params Params) (*Result, error)
	ArtistTracks(ctx context.Context, params Params) (*Result, error)
	ArtistsMusicInfo(ctx context.Context, params Params) (*Result, error)
	ArtistsLocations(ctx context.Context, params Params) (*Result, error)
}

// PlaylistsClient provides access to the playlist endpoints.
type PlaylistsClient interface {
	Playlists(ctx context.Context, params Params) (*Result, error)
	PlaylistsTracks(ctx context.Context, params Params) (*Result, error)
	PlaylistsFile(ctx context.Context, params Params) (*Result, error)
}

// DiscoveryClient groups the reviews, radios, concerts and autocomplete endpoints.
type DiscoveryClient interface {
	Concerts(ctx context.Context, params Params) (*Result, error)
	Reviews(ctx context.Context, params Params) (*Result, error)
	ReviewsAlbums(ctx context.Context, params Params) (*Result, error)
	Radios(ctx context.Context, params Params) (*Result, error)
	RadiosStream(ctx context.Context, params Params) (*Result, error)
	Autocomplete(ctx context.Context, params Params) (*Result, error)
}

// UsersClient provides access to the user endpoints. The favorites variants
// force relation=fan.
type UsersClient interface {
	Users(ctx context.Context, params Params) (*Result, error)
	UsersArtists(ctx context.Context, params Params) (*Result, error)
	UsersAlbums(ctx context.Context, params Params) (*Result, error)
	UsersTracks(ctx context.Context, params Params) (*Result, error)
	UsersFavoritesArtists(ctx context.Context, params Params) (*Result, error)
	UsersFavoritesAlbums(ctx context.Context, params Params) (*Result, error)
	UsersFavoritesTracks(ctx context.Context, params Params) (*Result, error)
}

// WriteClient provides access to the setuser write endpoints. Each call needs
// an access_token.
type WriteClient interface {
	SetUserFan(ctx context.Context, params Params) (*WriteResult, error)
	SetUserFavorite(ctx context.Context, params Params) (*WriteResult, error)
	SetUserLike(ctx context.Context, params Params) (*WriteResult, error)
	SetUserDislike(ctx context.Context, params Params) (*WriteResult, error)
}

// OAuthClient provides the authorization code flow.
type OAuthClient interface {
	Authorize(ctx context.Context, params Params) (string, error)
	AuthorizeURL(params Params) (string, error)
	Grant(ctx context.Context, params Params) (*Token, error)
	Refresh(ctx context.Context, refreshToken string) (*Token, error)
	OAuth2Config(redirectURL string, scopes ...string) *oauth2.Config
}

// Dispatcher issues requests against arbitrary endpoint paths.
type Dispatcher interface {
	Get(ctx context.Context, path string, params Params) (*Result, error)
	PostForm(ctx context.Context, path string, params Params) (*WriteResult, error)
}

// Client is the full Jamendo API surface.
type Client interface {
	// Composite interfaces for related endpoint groups
	TracksClient
	AlbumsClient
	ArtistsClient
	PlaylistsClient
	DiscoveryClient
	UsersClient
	WriteClient
	OAuthClient
	Dispatcher

	BaseURL() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a jamendo.Client.
//
// The configuration is copied at construction and never changes afterwards,
// so one client can be shared by concurrent callers.
type Config struct {
	// ClientID identifies the application. Required.
	ClientID string
	// ClientSecret is only needed for Grant and Refresh.
	ClientSecret string
	// Protocol is "http" or "https". Defaults to "http".
	Protocol string
	// APIVersion defaults to "v3.0".
	APIVersion string
	// BaseURL overrides the derived {protocol}://api.jamendo.com/{api_version}.
	// Mostly useful for tests and proxies.
	BaseURL string

	// Debug enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Retry enables exactly one extra attempt when no response was received.
	Retry bool
	// SkipTLSVerify disables certificate verification (rejectUnauthorized=false).
	SkipTLSVerify bool
	// HTTPTimeout is passed to the underlying http.Client. Zero means no
	// client-side timeout; use the context for per-call deadlines.
	HTTPTimeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// Interceptors run around every request.
	Interceptors *InterceptorChain
}

// BuildBaseURL derives the API base URL from a protocol and API version,
// applying the defaults for empty values.
func BuildBaseURL(protocol, apiVersion string) string {
	if protocol == "" {
		protocol = DefaultProtocol
	}

	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	return protocol + "://" + APIHost + "/" + apiVersion
}
