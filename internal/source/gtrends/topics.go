package gtrends

import (
	"context"
	"log/slog"

	"github.com/michy-dev/africa-trends-live/internal/domain"
	"github.com/michy-dev/africa-trends-live/internal/ports"
)

// Topics surfaces a region's daily trending searches. Failures degrade to
// an empty topic list; no fallback content is substituted here.
type Topics struct {
	client *Client
	logger *slog.Logger
}

var _ ports.TopicSource = (*Topics)(nil)

// NewTopics wires the widget-API client.
func NewTopics(client *Client, logger *slog.Logger) *Topics {
	return &Topics{client: client, logger: logger}
}

// DailyTopics fetches the trending searches for a geo.
func (t *Topics) DailyTopics(ctx context.Context, geo string) domain.TopicsReport {
	topics, err := t.client.DailyTrends(ctx, geo)
	if err != nil {
		if t.logger != nil {
			t.logger.Warn("daily trends fetch failed", "geo", geo, "error", err)
		}
		return domain.TopicsReport{Topics: []domain.TrendTopic{}, Degraded: true, Reason: err.Error()}
	}
	return domain.TopicsReport{Topics: topics}
}
