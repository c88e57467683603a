package gtrends

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/michy-dev/africa-trends-live/internal/domain"
	"github.com/michy-dev/africa-trends-live/internal/format"
	"github.com/michy-dev/africa-trends-live/internal/ports"
)

// Scorer turns the interest series into normalized 0..100 rankings and
// period-over-period changes. It never fails: any fetch or shape error
// degrades to the neutral all-zero report.
type Scorer struct {
	client *Client
	logger *slog.Logger
}

var _ ports.InterestScorer = (*Scorer)(nil)

// NewScorer wires the widget-API client.
func NewScorer(client *Client, logger *slog.Logger) *Scorer {
	return &Scorer{client: client, logger: logger}
}

// Score fetches the trailing-week series for the roster and derives scores
// and changes. Samples are consumed in chronological order; the series is
// split at its midpoint index into earlier and recent halves.
func (s *Scorer) Score(ctx context.Context, artists []string, geo string) domain.InterestReport {
	report := domain.NeutralInterest(artists)
	if len(artists) == 0 {
		report.Degraded = true
		report.Reason = "no artists tracked"
		return report
	}

	samples, err := s.client.InterestOverTime(ctx, artists, geo)
	if err != nil {
		s.warn("interest fetch failed", "geo", geo, "error", err)
		report.Degraded = true
		report.Reason = err.Error()
		return report
	}
	if len(samples) == 0 {
		report.Degraded = true
		report.Reason = "empty interest series"
		return report
	}

	totals := make([]int, len(artists))
	earlier := make([]int, len(artists))
	recent := make([]int, len(artists))

	mid := len(samples) / 2
	for i, sample := range samples {
		for j := range artists {
			if j >= len(sample.Values) {
				break
			}
			v := sample.Values[j]
			totals[j] += v
			if i < mid {
				earlier[j] += v
			} else {
				recent[j] += v
			}
		}
	}

	order := make([]int, len(artists))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return totals[order[a]] > totals[order[b]]
	})

	max := totals[order[0]]
	if max == 0 {
		max = 1
	}

	report.Rankings = report.Rankings[:0]
	for _, idx := range order {
		report.Rankings = append(report.Rankings, domain.ArtistScore{
			Name:  artists[idx],
			Score: int(math.Round(float64(totals[idx]) / float64(max) * 100)),
		})
	}

	report.Changes = report.Changes[:0]
	for j, name := range artists {
		report.Changes = append(report.Changes, domain.ArtistChange{
			Name:          name,
			PercentChange: format.PercentChange(recent[j], earlier[j]),
		})
	}

	return report
}

func (s *Scorer) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
