package usecase

import (
	"fmt"
	"sort"

	"github.com/michy-dev/africa-trends-live/internal/catalog"
	"github.com/michy-dev/africa-trends-live/internal/domain"
)

const maxRising = 6

// risingList gathers every positive interest change across all regions in
// catalog order, sorts descending by change, and keeps the top entries.
// When no artist grew, the static fallback list keeps the tab populated.
func (p *Pipeline) risingList(reports []domain.InterestReport, regions []domain.Region) []domain.RisingArtist {
	type candidate struct {
		change domain.ArtistChange
		flag   string
		region string
	}

	var candidates []candidate
	for i, region := range regions {
		if i >= len(reports) {
			break
		}
		for _, change := range reports[i].Changes {
			if change.PercentChange > 0 {
				candidates = append(candidates, candidate{
					change: change,
					flag:   region.FlagGlyph,
					region: region.Name,
				})
			}
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].change.PercentChange > candidates[b].change.PercentChange
	})
	if len(candidates) > maxRising {
		candidates = candidates[:maxRising]
	}

	if len(candidates) == 0 {
		return catalog.FallbackRising()
	}

	out := make([]domain.RisingArtist, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, domain.RisingArtist{
			Name:    c.change.Name,
			Country: c.flag,
			Change:  fmt.Sprintf("+%d%%", c.change.PercentChange),
			Reason:  "Trending in " + c.region,
		})
	}

	return out
}
