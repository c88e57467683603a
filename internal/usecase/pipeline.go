package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/michy-dev/africa-trends-live/internal/catalog"
	"github.com/michy-dev/africa-trends-live/internal/domain"
	"github.com/michy-dev/africa-trends-live/internal/ports"
)

const (
	newsLimit     = 5
	cityNewsLimit = 6
)

// PipelineDeps wires all driven adapters into the aggregation pipeline.
type PipelineDeps struct {
	Catalog     *catalog.Catalog
	Interest    ports.InterestScorer
	Topics      ports.TopicSource
	News        ports.NewsSource
	Charts      ports.ChartSource
	Logger      *slog.Logger
	Concurrency int
	Now         func() time.Time
}

// Pipeline implements the snapshot aggregation workflow: fan out over every
// source task with bounded concurrency, then merge results in catalog order
// so the output is deterministic regardless of completion order.
type Pipeline struct {
	catalog     *catalog.Catalog
	interest    ports.InterestScorer
	topics      ports.TopicSource
	news        ports.NewsSource
	charts      ports.ChartSource
	logger      *slog.Logger
	concurrency int
	now         func() time.Time
}

var _ ports.SnapshotBuilder = (*Pipeline)(nil)

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	p := &Pipeline{
		catalog:     deps.Catalog,
		interest:    deps.Interest,
		topics:      deps.Topics,
		news:        deps.News,
		charts:      deps.Charts,
		logger:      deps.Logger,
		concurrency: deps.Concurrency,
		now:         deps.Now,
	}
	if p.catalog == nil {
		p.catalog = catalog.Default()
	}
	if p.concurrency <= 0 {
		p.concurrency = 4
	}
	if p.now == nil {
		p.now = time.Now
	}
	return p
}

// BuildSnapshot runs one aggregation cycle. It never fails: every source
// call degrades locally, so the snapshot is always fully populated.
func (p *Pipeline) BuildSnapshot(ctx context.Context) *domain.Snapshot {
	regions := p.catalog.Regions
	cities := p.catalog.Cities
	countries := p.catalog.ChartCountries

	interest := make([]domain.InterestReport, len(regions))
	topics := make([]domain.TopicsReport, len(regions))
	news := make([]domain.FeedReport, len(storyCategories))
	cityNews := make([]domain.FeedReport, len(cities))
	charts := make([]domain.ChartReport, len(countries))

	var tasks []func()
	for i, region := range regions {
		i, region := i, region
		tasks = append(tasks,
			func() { interest[i] = p.scoreRegion(ctx, region) },
			func() { topics[i] = p.topicsFor(ctx, region) },
		)
	}
	for i, category := range storyCategories {
		i, category := i, category
		tasks = append(tasks, func() { news[i] = p.searchNews(ctx, category.Query, newsLimit) })
	}
	for i, city := range cities {
		i, city := i, city
		tasks = append(tasks, func() { cityNews[i] = p.searchNews(ctx, city.Name+" music news", cityNewsLimit) })
	}
	for i, country := range countries {
		i, country := i, country
		tasks = append(tasks, func() { charts[i] = p.chartFor(ctx, country) })
	}

	p.runAll(tasks)

	snap := &domain.Snapshot{
		Rankings:       make(map[string][]domain.ArtistScore, len(regions)),
		TrendingTopics: make(map[string][]domain.TrendTopic, len(regions)),
		News:           make(map[string][]domain.NewsItem, len(storyCategories)),
		CityTrends:     make(map[string][]domain.NewsItem, len(cities)),
		Spotify:        make(map[string][]domain.ChartTrack, len(countries)),
		Audience:       domain.Audience{Cities: cities},
		UpdatedAt:      p.now().UTC(),
	}

	for i, region := range regions {
		snap.Rankings[region.ID] = nonNilScores(interest[i].Rankings)
		snap.TrendingTopics[region.ID] = nonNilTopics(topics[i].Topics)
		if interest[i].Degraded {
			snap.Degraded = append(snap.Degraded, "interest:"+region.ID)
		}
		if topics[i].Degraded {
			snap.Degraded = append(snap.Degraded, "topics:"+region.ID)
		}
	}
	for i, category := range storyCategories {
		snap.News[category.Key] = nonNilItems(news[i].Items)
		if news[i].Degraded {
			snap.Degraded = append(snap.Degraded, "news:"+category.Key)
		}
	}
	for i, city := range cities {
		snap.CityTrends[city.Name] = nonNilItems(cityNews[i].Items)
		if cityNews[i].Degraded {
			snap.Degraded = append(snap.Degraded, "city:"+city.Name)
		}
	}
	for i, country := range countries {
		snap.Spotify[country.Label()] = charts[i].Tracks
		if charts[i].Degraded {
			snap.Degraded = append(snap.Degraded, "charts:"+country.Code)
		}
	}

	snap.Rising = p.risingList(interest, regions)
	snap.Stories = buildStories(news)

	if p.logger != nil {
		p.logger.Info("snapshot built",
			"regions", len(regions),
			"stories", len(snap.Stories),
			"degraded_sources", len(snap.Degraded))
	}

	return snap
}

func (p *Pipeline) scoreRegion(ctx context.Context, region domain.Region) domain.InterestReport {
	if p.interest == nil {
		report := domain.NeutralInterest(region.Artists)
		report.Degraded = true
		report.Reason = "interest scorer not configured"
		return report
	}
	report := p.interest.Score(ctx, region.Artists, region.GeoCode)
	for i := range report.Changes {
		report.Changes[i].Region = region.ID
	}
	return report
}

func (p *Pipeline) topicsFor(ctx context.Context, region domain.Region) domain.TopicsReport {
	if p.topics == nil {
		return domain.TopicsReport{Topics: []domain.TrendTopic{}, Degraded: true, Reason: "topic source not configured"}
	}
	return p.topics.DailyTopics(ctx, region.GeoCode)
}

func (p *Pipeline) searchNews(ctx context.Context, query string, limit int) domain.FeedReport {
	if p.news == nil {
		return domain.FeedReport{Items: []domain.NewsItem{}, Degraded: true, Reason: "news source not configured"}
	}
	return p.news.Search(ctx, query, limit)
}

func (p *Pipeline) chartFor(ctx context.Context, country catalog.ChartCountry) domain.ChartReport {
	if p.charts == nil {
		return domain.ChartReport{Tracks: catalog.BackupChart(country.Code), Degraded: true, Reason: "chart source not configured"}
	}
	return p.charts.TopTracks(ctx, country.Code)
}

// runAll executes tasks with a bounded worker pool and waits for all of
// them. Each task writes to its own slot, so no synchronization beyond the
// wait is needed.
func (p *Pipeline) runAll(tasks []func()) {
	sem := make(chan struct{}, p.concurrency)
	var wg sync.WaitGroup

	for _, task := range tasks {
		task := task
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			task()
		}()
	}

	wg.Wait()
}

func nonNilScores(in []domain.ArtistScore) []domain.ArtistScore {
	if in == nil {
		return []domain.ArtistScore{}
	}
	return in
}

func nonNilTopics(in []domain.TrendTopic) []domain.TrendTopic {
	if in == nil {
		return []domain.TrendTopic{}
	}
	return in
}

func nonNilItems(in []domain.NewsItem) []domain.NewsItem {
	if in == nil {
		return []domain.NewsItem{}
	}
	return in
}
