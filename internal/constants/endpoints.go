package constants

// Read endpoint paths, relative to the API base URL.
const (
	PathTracks           = "/tracks"
	PathTracksFile       = "/tracks/file"
	PathAlbums           = "/albums"
	PathAlbumTracks      = "/album/tracks"
	PathAlbumsFile       = "/albums/file"
	PathAlbumsMusicInfo  = "/albums/musicinfo"
	PathArtists          = "/artists"
	PathArtistAlbums     = "/artist/albums"
	PathArtistTracks     = "/artist/tracks"
	PathArtistsMusicInfo = "/artists/musicinfo"
	PathArtistsLocations = "/artists/locations"
	PathConcerts         = "/concerts"
	PathPlaylists        = "/playlists"
	PathPlaylistsTracks  = "/playlists/tracks"
	PathPlaylistsFile    = "/playlists/file"
	PathReviews          = "/reviews"
	PathReviewsAlbums    = "/reviews/albums"
	PathRadios           = "/radios"
	PathRadiosStream     = "/radios/stream"
	PathUsers            = "/users"
	PathUsersArtists     = "/users/artists"
	PathUsersAlbums      = "/users/albums"
	PathUsersTracks      = "/users/tracks"
	PathAutocomplete     = "/autocomplete"
)

// Write endpoint paths (POST, form encoded).
const (
	PathSetUserFan      = "/setuser/fan"
	PathSetUserFavorite = "/setuser/favorite"
	PathSetUserLike     = "/setuser/like"
	PathSetUserDislike  = "/setuser/dislike"
)

// OAuth endpoint paths.
const (
	PathOAuthAuthorize = "/oauth/authorize"
	PathOAuthGrant     = "/oauth/grant"
)

// Endpoint describes one entry of the endpoint table.
type Endpoint struct {
	// Name is the CLI command name.
	Name string
	// Path is appended to the API base URL.
	Path string
	// Short is a one-line description.
	Short string
	// Relation, when set, is forced into the request params.
	Relation string
	// Required lists params the endpoint cannot do without.
	Required []string
}

// ReadEndpoints is the table of GET endpoints.
var ReadEndpoints = []Endpoint{
	{Name: "tracks", Path: PathTracks, Short: "Search and list tracks"},
	{Name: "tracks-file", Path: PathTracksFile, Short: "Get a track audio file or stream"},
	{Name: "albums", Path: PathAlbums, Short: "Search and list albums"},
	{Name: "album-tracks", Path: PathAlbumTracks, Short: "List albums with their tracks"},
	{Name: "albums-file", Path: PathAlbumsFile, Short: "Get an album archive"},
	{Name: "albums-musicinfo", Path: PathAlbumsMusicInfo, Short: "Get album tags"},
	{Name: "artists", Path: PathArtists, Short: "Search and list artists"},
	{Name: "artist-albums", Path: PathArtistAlbums, Short: "List artists with their albums"},
	{Name: "artist-tracks", Path: PathArtistTracks, Short: "List artists with their tracks"},
	{Name: "artists-musicinfo", Path: PathArtistsMusicInfo, Short: "Get artist tags"},
	{Name: "artists-locations", Path: PathArtistsLocations, Short: "Get artist locations"},
	{Name: "concerts", Path: PathConcerts, Short: "List concerts"},
	{Name: "playlists", Path: PathPlaylists, Short: "Search and list playlists"},
	{Name: "playlists-tracks", Path: PathPlaylistsTracks, Short: "List playlists with their tracks"},
	{Name: "playlists-file", Path: PathPlaylistsFile, Short: "Get a playlist archive"},
	{Name: "reviews", Path: PathReviews, Short: "List reviews"},
	{Name: "reviews-albums", Path: PathReviewsAlbums, Short: "List reviewed albums"},
	{Name: "radios", Path: PathRadios, Short: "List radios"},
	{Name: "radios-stream", Path: PathRadiosStream, Short: "Get a radio stream"},
	{Name: "users", Path: PathUsers, Short: "Get user information"},
	{Name: "users-artists", Path: PathUsersArtists, Short: "List artists related to users"},
	{Name: "users-albums", Path: PathUsersAlbums, Short: "List albums related to users"},
	{Name: "users-tracks", Path: PathUsersTracks, Short: "List tracks related to users"},
	{Name: "autocomplete", Path: PathAutocomplete, Short: "Autocomplete a prefix"},
}

// FavoriteEndpoints are the user endpoints with relation=fan forced.
var FavoriteEndpoints = []Endpoint{
	{Name: "artists", Path: PathUsersArtists, Short: "List a user's favorite artists", Relation: "fan"},
	{Name: "albums", Path: PathUsersAlbums, Short: "List a user's favorite albums", Relation: "fan"},
	{Name: "tracks", Path: PathUsersTracks, Short: "List a user's favorite tracks", Relation: "fan"},
}

// WriteEndpoints is the table of POST endpoints.
var WriteEndpoints = []Endpoint{
	{Name: "fan", Path: PathSetUserFan, Short: "Become a fan of an artist", Required: []string{"access_token", "artist_id"}},
	{Name: "favorite", Path: PathSetUserFavorite, Short: "Add a track to favorites", Required: []string{"access_token", "track_id"}},
	{Name: "like", Path: PathSetUserLike, Short: "Like a track", Required: []string{"access_token", "track_id"}},
	{Name: "dislike", Path: PathSetUserDislike, Short: "Dislike a track", Required: []string{"access_token", "track_id"}},
}

// LookupWriteEndpoint returns the write endpoint registered for path.
func LookupWriteEndpoint(path string) (Endpoint, bool) {
	for _, endpoint := range WriteEndpoints {
		if endpoint.Path == path {
			return endpoint, true
		}
	}

	return Endpoint{}, false
}
