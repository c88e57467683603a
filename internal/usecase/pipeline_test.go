package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/michy-dev/africa-trends-live/internal/catalog"
	"github.com/michy-dev/africa-trends-live/internal/domain"
)

type fakeInterest struct {
	byGeo map[string]domain.InterestReport
}

func (f fakeInterest) Score(_ context.Context, artists []string, geo string) domain.InterestReport {
	if report, ok := f.byGeo[geo]; ok {
		return report
	}
	report := domain.NeutralInterest(artists)
	report.Degraded = true
	report.Reason = "no fixture"
	return report
}

type fakeTopics struct{}

func (fakeTopics) DailyTopics(context.Context, string) domain.TopicsReport {
	return domain.TopicsReport{Topics: []domain.TrendTopic{{Title: "topic", Traffic: "50K+"}}}
}

type fakeNews struct {
	byQuery map[string][]domain.NewsItem
}

func (f fakeNews) Search(_ context.Context, query string, limit int) domain.FeedReport {
	items := f.byQuery[query]
	if len(items) > limit {
		items = items[:limit]
	}
	return domain.FeedReport{Items: items}
}

type fakeCharts struct {
	byCode map[string][]domain.ChartTrack
}

func (f fakeCharts) TopTracks(_ context.Context, code string) domain.ChartReport {
	if tracks, ok := f.byCode[code]; ok {
		return domain.ChartReport{Tracks: tracks}
	}
	return domain.ChartReport{Tracks: catalog.BackupChart(code), Degraded: true, Reason: "no fixture"}
}

func testCatalog() *catalog.Catalog {
	return catalog.New(
		[]domain.Region{{
			ID:        "NIGERIA",
			Name:      "Nigeria",
			GeoCode:   "NG",
			FlagGlyph: "🇳🇬",
			Artists:   []string{"A", "B"},
		}},
		[]domain.City{{Name: "Lagos", Flag: "🇳🇬", TopArtist: "A", Searches: "2.4M"}},
		[]catalog.ChartCountry{{Code: "ng", Name: "Nigeria", Flag: "🇳🇬"}},
	)
}

func TestBuildSnapshotAssemblesAllSections(t *testing.T) {
	t.Parallel()

	interest := fakeInterest{byGeo: map[string]domain.InterestReport{
		"NG": {
			Rankings: []domain.ArtistScore{{Name: "A", Score: 100}, {Name: "B", Score: 50}},
			Changes: []domain.ArtistChange{
				{Name: "A", PercentChange: 200},
				{Name: "B", PercentChange: 0},
			},
		},
	}}
	news := fakeNews{byQuery: map[string][]domain.NewsItem{
		"Afrobeats music": {{Title: "Big single drops", Source: "Pulse", URL: "https://example.com/1", Date: "8/1/2026"}},
		"Lagos music news": {{Title: "Lagos show", Source: "Local", URL: "https://example.com/2", Date: "8/2/2026"}},
	}}

	pipeline := NewPipeline(PipelineDeps{
		Catalog:  testCatalog(),
		Interest: interest,
		Topics:   fakeTopics{},
		News:     news,
		Charts:   fakeCharts{byCode: map[string][]domain.ChartTrack{"ng": {{Rank: 1, Title: "Jogodo", Artist: "Wizkid", Streams: "607K"}}}},
		Now:      func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) },
	})

	snap := pipeline.BuildSnapshot(context.Background())

	rankings := snap.Rankings["NIGERIA"]
	if len(rankings) != 2 || rankings[0] != (domain.ArtistScore{Name: "A", Score: 100}) || rankings[1] != (domain.ArtistScore{Name: "B", Score: 50}) {
		t.Fatalf("unexpected rankings: %+v", rankings)
	}

	if len(snap.Rising) != 1 {
		t.Fatalf("expected 1 rising entry, got %d", len(snap.Rising))
	}
	rising := snap.Rising[0]
	if rising.Name != "A" || rising.Change != "+200%" || rising.Country != "🇳🇬" || rising.Reason != "Trending in Nigeria" {
		t.Fatalf("unexpected rising entry: %+v", rising)
	}

	if len(snap.Stories) != 1 {
		t.Fatalf("expected 1 story (only afrobeats has items), got %d", len(snap.Stories))
	}
	story := snap.Stories[0]
	if story.Type != "Afrobeats News" || story.Headline != "Big single drops" || len(story.Angles) != 3 {
		t.Fatalf("unexpected story: %+v", story)
	}

	if got := snap.CityTrends["Lagos"]; len(got) != 1 || got[0].Title != "Lagos show" {
		t.Fatalf("unexpected city trends: %+v", got)
	}

	if tracks := snap.Spotify["🇳🇬 Nigeria"]; len(tracks) != 1 || tracks[0].Title != "Jogodo" {
		t.Fatalf("unexpected spotify tracks: %+v", snap.Spotify)
	}

	if topics := snap.TrendingTopics["NIGERIA"]; len(topics) != 1 || topics[0].Title != "topic" {
		t.Fatalf("unexpected trending topics: %+v", topics)
	}

	if len(snap.Audience.Cities) != 1 || snap.Audience.Cities[0].Name != "Lagos" {
		t.Fatalf("unexpected audience: %+v", snap.Audience)
	}

	if !snap.UpdatedAt.Equal(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected updatedAt: %v", snap.UpdatedAt)
	}

	if len(snap.Degraded) != 0 {
		t.Fatalf("expected fully fresh snapshot, degraded: %v", snap.Degraded)
	}
}

func TestRisingFiltersSortsAndCaps(t *testing.T) {
	t.Parallel()

	changes := []domain.ArtistChange{
		{Name: "a", PercentChange: 10},
		{Name: "b", PercentChange: -5},
		{Name: "c", PercentChange: 300},
		{Name: "d", PercentChange: 0},
		{Name: "e", PercentChange: 40},
		{Name: "f", PercentChange: 120},
		{Name: "g", PercentChange: 75},
		{Name: "h", PercentChange: 15},
		{Name: "i", PercentChange: 55},
	}
	interest := fakeInterest{byGeo: map[string]domain.InterestReport{
		"NG": {Rankings: []domain.ArtistScore{}, Changes: changes},
	}}

	pipeline := NewPipeline(PipelineDeps{Catalog: testCatalog(), Interest: interest})
	snap := pipeline.BuildSnapshot(context.Background())

	if len(snap.Rising) != maxRising {
		t.Fatalf("expected %d rising entries, got %d", maxRising, len(snap.Rising))
	}

	wantOrder := []string{"c", "f", "g", "i", "e", "h"}
	for i, entry := range snap.Rising {
		if entry.Name != wantOrder[i] {
			t.Fatalf("rising[%d] = %s, want %s", i, entry.Name, wantOrder[i])
		}
		if entry.Change[0] != '+' {
			t.Fatalf("rising entry %s has non-positive change %s", entry.Name, entry.Change)
		}
	}
}

func TestRisingFallsBackWhenNothingGrew(t *testing.T) {
	t.Parallel()

	interest := fakeInterest{byGeo: map[string]domain.InterestReport{
		"NG": {
			Rankings: []domain.ArtistScore{{Name: "A"}, {Name: "B"}},
			Changes: []domain.ArtistChange{
				{Name: "A", PercentChange: 0},
				{Name: "B", PercentChange: -30},
			},
		},
	}}

	pipeline := NewPipeline(PipelineDeps{Catalog: testCatalog(), Interest: interest})
	snap := pipeline.BuildSnapshot(context.Background())

	fallback := catalog.FallbackRising()
	if len(snap.Rising) != len(fallback) {
		t.Fatalf("expected fallback rising list, got %d entries", len(snap.Rising))
	}
	if snap.Rising[0].Name != fallback[0].Name {
		t.Fatalf("rising[0] = %s, want fallback %s", snap.Rising[0].Name, fallback[0].Name)
	}
}

func TestSnapshotChartsNeverEmpty(t *testing.T) {
	t.Parallel()

	// No chart source wired at all: the backup list must still fill the tab.
	pipeline := NewPipeline(PipelineDeps{Catalog: testCatalog()})
	snap := pipeline.BuildSnapshot(context.Background())

	tracks := snap.Spotify["🇳🇬 Nigeria"]
	if len(tracks) == 0 {
		t.Fatal("spotify section must never be empty")
	}
	if len(tracks) > 5 {
		t.Fatalf("spotify section has %d tracks, cap is 5", len(tracks))
	}

	found := false
	for _, label := range snap.Degraded {
		if label == "charts:ng" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected charts:ng in degraded list, got %v", snap.Degraded)
	}
}

func TestSnapshotDeterministicAcrossRuns(t *testing.T) {
	t.Parallel()

	interest := fakeInterest{byGeo: map[string]domain.InterestReport{
		"NG": {
			Rankings: []domain.ArtistScore{{Name: "A", Score: 100}},
			Changes:  []domain.ArtistChange{{Name: "A", PercentChange: 10}},
		},
	}}

	pipeline := NewPipeline(PipelineDeps{
		Catalog:     testCatalog(),
		Interest:    interest,
		Topics:      fakeTopics{},
		News:        fakeNews{},
		Charts:      fakeCharts{},
		Concurrency: 8,
	})

	first := pipeline.BuildSnapshot(context.Background())
	second := pipeline.BuildSnapshot(context.Background())

	if len(first.Degraded) != len(second.Degraded) {
		t.Fatalf("degraded lists differ: %v vs %v", first.Degraded, second.Degraded)
	}
	for i := range first.Degraded {
		if first.Degraded[i] != second.Degraded[i] {
			t.Fatalf("degraded order differs at %d: %s vs %s", i, first.Degraded[i], second.Degraded[i])
		}
	}
	if first.Rising[0] != second.Rising[0] {
		t.Fatalf("rising differs across runs: %+v vs %+v", first.Rising[0], second.Rising[0])
	}
}
