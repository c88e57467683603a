package domain

// Source-facing calls never fail: they return one of the report types below,
// which carry the payload plus a degraded marker so callers can tell fresh
// data from fallback content without inspecting it.

// InterestReport is the interest scoring result for one region.
type InterestReport struct {
	Rankings []ArtistScore
	Changes  []ArtistChange
	Degraded bool
	Reason   string
}

// NeutralInterest builds the zero-signal report for a roster: every artist
// at score 0 and change 0, in roster order.
func NeutralInterest(artists []string) InterestReport {
	report := InterestReport{
		Rankings: make([]ArtistScore, 0, len(artists)),
		Changes:  make([]ArtistChange, 0, len(artists)),
	}
	for _, name := range artists {
		report.Rankings = append(report.Rankings, ArtistScore{Name: name})
		report.Changes = append(report.Changes, ArtistChange{Name: name})
	}
	return report
}

// TopicsReport is the daily-trending-topics result for one region.
type TopicsReport struct {
	Topics   []TrendTopic
	Degraded bool
	Reason   string
}

// FeedReport is the news extraction result for one query.
type FeedReport struct {
	Items    []NewsItem
	Degraded bool
	Reason   string
}

// ChartReport is the chart extraction result for one country. When Degraded
// is set, Tracks holds the static backup list rather than an empty slice.
type ChartReport struct {
	Tracks   []ChartTrack
	Degraded bool
	Reason   string
}
