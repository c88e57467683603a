package ports

import (
	"context"
	"time"

	"github.com/michy-dev/africa-trends-live/internal/domain"
)

// Source-facing ports return reports instead of errors: every implementation
// absorbs transport, shape, and extraction failures and degrades to its
// fallback value, so a single source can never abort an aggregation cycle.

// InterestScorer turns a region's artist roster into normalized scores and
// period-over-period changes.
type InterestScorer interface {
	Score(ctx context.Context, artists []string, geo string) domain.InterestReport
}

// TopicSource fetches the daily trending searches for a region.
type TopicSource interface {
	DailyTopics(ctx context.Context, geo string) domain.TopicsReport
}

// NewsSource extracts bounded, time-windowed article records for a query.
type NewsSource interface {
	Search(ctx context.Context, query string, limit int) domain.FeedReport
}

// ChartSource extracts the top tracks of a country chart page.
type ChartSource interface {
	TopTracks(ctx context.Context, countryCode string) domain.ChartReport
}

// SnapshotBuilder produces the aggregate snapshot for one cycle.
type SnapshotBuilder interface {
	BuildSnapshot(ctx context.Context) *domain.Snapshot
}

// Notifier streams digests to Telegram or other channels.
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}

// Scheduler controls when background refreshes execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
