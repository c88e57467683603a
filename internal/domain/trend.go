package domain

import "time"

// Region is a tracked market with its artist roster and search geo code.
type Region struct {
	ID        string
	Name      string
	GeoCode   string
	Artists   []string
	FlagGlyph string
}

// City carries static audience display metadata for the city selector.
type City struct {
	Name      string `json:"name"`
	Flag      string `json:"flag"`
	TopArtist string `json:"topArtist"`
	Searches  string `json:"searches"`
}

// InterestSample is one timestamped observation of the interest series,
// with one value per tracked artist in roster order.
type InterestSample struct {
	Time   time.Time
	Values []int
}

// ArtistScore is a normalized 0..100 popularity score within a region.
type ArtistScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// ArtistChange is the period-over-period interest change for one artist.
type ArtistChange struct {
	Name          string `json:"name"`
	Region        string `json:"region"`
	PercentChange int    `json:"percentChange"`
}

// RisingArtist is the display record derived from positive ArtistChanges.
type RisingArtist struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Change  string `json:"change"`
	Reason  string `json:"reason"`
}

// NewsItem is one syndicated article surfaced on the dashboard.
type NewsItem struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
	Date        string    `json:"date"`
}

// ChartTrack is a ranked entry from a country streaming chart.
type ChartTrack struct {
	Rank    int    `json:"rank"`
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	Streams string `json:"streams"`
}

// RelatedArticle links a trending topic to its press coverage.
type RelatedArticle struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	URL    string `json:"url"`
}

// TrendTopic is a daily trending search with its traffic label.
type TrendTopic struct {
	Title    string           `json:"title"`
	Traffic  string           `json:"traffic"`
	Articles []RelatedArticle `json:"articles"`
}

// StoryIdea is an editorial prompt derived from the lead item of a
// monitored news category, paired with that category's angle taxonomy.
type StoryIdea struct {
	Type     string   `json:"type"`
	Hook     string   `json:"hook"`
	Headline string   `json:"headline"`
	Source   string   `json:"source,omitempty"`
	URL      string   `json:"url,omitempty"`
	Date     string   `json:"date,omitempty"`
	Angles   []string `json:"angles"`
}

// Audience groups static display metadata for the audience tab.
type Audience struct {
	Cities []City `json:"cities"`
}

// Snapshot is the aggregate result of one pipeline run. It is built fresh
// each cycle and shares no mutable state with previous cycles.
type Snapshot struct {
	Rankings       map[string][]ArtistScore `json:"rankings"`
	TrendingTopics map[string][]TrendTopic  `json:"trendingTopics"`
	News           map[string][]NewsItem    `json:"news"`
	Rising         []RisingArtist           `json:"rising"`
	Stories        []StoryIdea              `json:"stories"`
	Audience       Audience                 `json:"audience"`
	CityTrends     map[string][]NewsItem    `json:"cityTrends"`
	Spotify        map[string][]ChartTrack  `json:"spotify"`
	UpdatedAt      time.Time                `json:"updatedAt"`
	Degraded       []string                 `json:"degraded,omitempty"`
}
