package usecase

import "github.com/michy-dev/africa-trends-live/internal/domain"

// storyCategory declares one monitored news category: the feed query that
// fills it and the fixed angle taxonomy attached to its stories.
type storyCategory struct {
	Key     string
	Query   string
	Display string
	Angles  []string
}

// Category order is fixed; stories are emitted in this order.
var storyCategories = []storyCategory{
	{
		Key:     "afrobeats",
		Query:   "Afrobeats music",
		Display: "Afrobeats News",
		Angles:  []string{"Artist reaction", "Industry impact", "Fan perspective"},
	},
	{
		Key:     "amapiano",
		Query:   "Amapiano music South Africa",
		Display: "Amapiano News",
		Angles:  []string{"Scene update", "Producer spotlight", "Club culture"},
	},
	{
		Key:     "nigeriaCulture",
		Query:   "Nigeria entertainment culture",
		Display: "Nigeria Culture",
		Angles:  []string{"Social media buzz", "Youth perspective", "Cultural context"},
	},
	{
		Key:     "southAfricaCulture",
		Query:   "South Africa entertainment culture",
		Display: "South Africa Culture",
		Angles:  []string{"Local reaction", "Trend analysis", "Expert take"},
	},
	{
		Key:     "africanMusic",
		Query:   "African music industry",
		Display: "African Music Industry",
		Angles:  []string{"Business angle", "Artist perspective", "Global impact"},
	},
}

// buildStories derives one StoryIdea per category with at least one item,
// from that category's lead item. Empty categories emit nothing; unlike
// rising and charts there is no fallback here.
func buildStories(reports []domain.FeedReport) []domain.StoryIdea {
	stories := make([]domain.StoryIdea, 0, len(storyCategories))

	for i, category := range storyCategories {
		if i >= len(reports) || len(reports[i].Items) == 0 {
			continue
		}
		lead := reports[i].Items[0]
		stories = append(stories, domain.StoryIdea{
			Type:     category.Display,
			Hook:     lead.Title,
			Headline: lead.Title,
			Source:   lead.Source,
			URL:      lead.URL,
			Date:     lead.Date,
			Angles:   append([]string(nil), category.Angles...),
		})
	}

	return stories
}
