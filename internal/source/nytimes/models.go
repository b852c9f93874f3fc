package nytimes

// APIResponse represents the NYT most popular API response structure.
type APIResponse struct {
	Status     string    `json:"status"`
	Copyright  string    `json:"copyright"`
	NumResults int       `json:"num_results"`
	Results    []RawNews `json:"results"`
}

type RawNews struct {
	ID            int64      `json:"id"`
	AssetID       int64      `json:"asset_id"`
	URL           string     `json:"url"`
	Source        string     `json:"source"`
	PublishedDate string     `json:"published_date"`
	Updated       string     `json:"updated"`
	Section       string     `json:"section"`
	Subsection    string     `json:"subsection"`
	Byline        string     `json:"byline"`
	Type          string     `json:"type"`
	Title         string     `json:"title"`
	Abstract      string     `json:"abstract"`
	Media         []RawMedia `json:"media"`
}

type RawMedia struct {
	Type      string             `json:"type"`
	Subtype   string             `json:"subtype"`
	Caption   string             `json:"caption"`
	Copyright string             `json:"copyright"`
	Metadata  []RawMediaMetadata `json:"media-metadata"`
}

type RawMediaMetadata struct {
	URL    string `json:"url"`
	Format string `json:"format"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}
