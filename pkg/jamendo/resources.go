package jamendo

// Track represents an entry of the /tracks results.
type Track struct {
	ID                   string `json:"id"                     yaml:"id"`
	Name                 string `json:"name"                   yaml:"name"`
	Duration             int    `json:"duration"               yaml:"duration"`
	ArtistID             string `json:"artist_id"              yaml:"artist_id"`
	ArtistName           string `json:"artist_name"            yaml:"artist_name"`
	AlbumID              string `json:"album_id"               yaml:"album_id"`
	AlbumName            string `json:"album_name"             yaml:"album_name"`
	AlbumImage           string `json:"album_image"            yaml:"album_image"`
	Position             int    `json:"position"               yaml:"position"`
	ReleaseDate          string `json:"releasedate"            yaml:"releasedate"`
	LicenseCCURL         string `json:"license_ccurl"          yaml:"license_ccurl"`
	Audio                string `json:"audio"                  yaml:"audio"`
	AudioDownload        string `json:"audiodownload"          yaml:"audiodownload"`
	AudioDownloadAllowed bool   `json:"audiodownload_allowed"  yaml:"audiodownload_allowed"`
	ShortURL             string `json:"shorturl"               yaml:"shorturl"`
	ShareURL             string `json:"shareurl"               yaml:"shareurl"`
	Image                string `json:"image"                  yaml:"image"`
	ProURL               string `json:"prourl,omitempty"       yaml:"prourl,omitempty"`
	WaveformURL          string `json:"waveform,omitempty"     yaml:"waveform,omitempty"`
	MusicInfo            any    `json:"musicinfo,omitempty"    yaml:"musicinfo,omitempty"`
	Stats                any    `json:"stats,omitempty"        yaml:"stats,omitempty"`
}

// Album represents an entry of the /albums results.
type Album struct {
	ID          string  `json:"id"               yaml:"id"`
	Name        string  `json:"name"             yaml:"name"`
	ReleaseDate string  `json:"releasedate"      yaml:"releasedate"`
	ArtistID    string  `json:"artist_id"        yaml:"artist_id"`
	ArtistName  string  `json:"artist_name"      yaml:"artist_name"`
	Image       string  `json:"image"            yaml:"image"`
	Zip         string  `json:"zip"              yaml:"zip"`
	ZipAllowed  bool    `json:"zip_allowed"      yaml:"zip_allowed"`
	ShortURL    string  `json:"shorturl"         yaml:"shorturl"`
	ShareURL    string  `json:"shareurl"         yaml:"shareurl"`
	Tracks      []Track `json:"tracks,omitempty" yaml:"tracks,omitempty"`
}

// Artist represents an entry of the /artists results.
type Artist struct {
	ID       string  `json:"id"               yaml:"id"`
	Name     string  `json:"name"             yaml:"name"`
	Website  string  `json:"website"          yaml:"website"`
	JoinDate string  `json:"joindate"         yaml:"joindate"`
	Image    string  `json:"image"            yaml:"image"`
	ShortURL string  `json:"shorturl"         yaml:"shorturl"`
	ShareURL string  `json:"shareurl"         yaml:"shareurl"`
	Albums   []Album `json:"albums,omitempty" yaml:"albums,omitempty"`
	Tracks   []Track `json:"tracks,omitempty" yaml:"tracks,omitempty"`
}

// Playlist represents an entry of the /playlists results.
type Playlist struct {
	ID           string  `json:"id"               yaml:"id"`
	Name         string  `json:"name"             yaml:"name"`
	CreationDate string  `json:"creationdate"     yaml:"creationdate"`
	UserID       string  `json:"user_id"          yaml:"user_id"`
	UserName     string  `json:"user_name"        yaml:"user_name"`
	Zip          string  `json:"zip"              yaml:"zip"`
	ShortURL     string  `json:"shorturl"         yaml:"shorturl"`
	ShareURL     string  `json:"shareurl"         yaml:"shareurl"`
	Tracks       []Track `json:"tracks,omitempty" yaml:"tracks,omitempty"`
}

// Radio represents an entry of the /radios results.
type Radio struct {
	ID          string `json:"id"                   yaml:"id"`
	Name        string `json:"name"                 yaml:"name"`
	DisplayName string `json:"dispname"             yaml:"dispname"`
	Type        string `json:"type"                 yaml:"type"`
	Image       string `json:"image"                yaml:"image"`
	Stream      string `json:"stream,omitempty"     yaml:"stream,omitempty"`
	PlayingNow  any    `json:"playingnow,omitempty" yaml:"playingnow,omitempty"`
}

// User represents an entry of the /users results.
type User struct {
	ID           string `json:"id"           yaml:"id"`
	Name         string `json:"name"         yaml:"name"`
	DisplayName  string `json:"dispname"     yaml:"dispname"`
	Lang         string `json:"lang"         yaml:"lang"`
	CreationDate string `json:"creationdate" yaml:"creationdate"`
	Image        string `json:"image"        yaml:"image"`
}

// Review represents an entry of the /reviews results.
type Review struct {
	ID         string `json:"id"          yaml:"id"`
	Title      string `json:"title"       yaml:"title"`
	Text       string `json:"text"        yaml:"text"`
	Lang       string `json:"lang"        yaml:"lang"`
	DateAdded  string `json:"dateadded"   yaml:"dateadded"`
	UserID     string `json:"user_id"     yaml:"user_id"`
	UserName   string `json:"user_name"   yaml:"user_name"`
	AlbumID    string `json:"album_id"    yaml:"album_id"`
	AlbumName  string `json:"album_name"  yaml:"album_name"`
	ArtistID   string `json:"artist_id"   yaml:"artist_id"`
	ArtistName string `json:"artist_name" yaml:"artist_name"`
}
