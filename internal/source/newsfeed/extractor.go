// Package newsfeed extracts bounded, time-windowed article records from the
// Google News RSS search endpoint.
package newsfeed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed/rss"

	"github.com/michy-dev/africa-trends-live/internal/domain"
	"github.com/michy-dev/africa-trends-live/internal/ports"
)

const (
	// DefaultLimit caps a query's items when the caller passes no limit.
	DefaultLimit = 5

	// Items older than this trailing window are discarded.
	windowMonths = 6

	displayDateLayout = "1/2/2006"
)

// Locale parameterizes the syndication search endpoint for a market.
type Locale struct {
	HL   string
	GL   string
	CEID string
}

// Extractor fetches and scans the feed for a query. Any fetch or parse
// failure yields an empty, degraded report; no exception escapes.
type Extractor struct {
	baseURL   string
	userAgent string
	locale    Locale
	client    *http.Client
	parser    *rss.Parser
	logger    *slog.Logger
	now       func() time.Time
}

var _ ports.NewsSource = (*Extractor)(nil)

// NewExtractor wires an HTTP client; a nil client gets a 10s-timeout default.
func NewExtractor(baseURL, userAgent string, locale Locale, client *http.Client, logger *slog.Logger) *Extractor {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Extractor{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		locale:    locale,
		client:    client,
		parser:    &rss.Parser{},
		logger:    logger,
		now:       time.Now,
	}
}

// Search returns up to limit items for the query, in document order,
// excluding anything published outside the trailing window.
func (e *Extractor) Search(ctx context.Context, query string, limit int) domain.FeedReport {
	if limit <= 0 {
		limit = DefaultLimit
	}
	report := domain.FeedReport{Items: []domain.NewsItem{}}

	feed, err := e.fetchFeed(ctx, e.searchURL(query))
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("feed fetch failed", "query", query, "error", err)
		}
		report.Degraded = true
		report.Reason = err.Error()
		return report
	}

	cutoff := e.now().AddDate(0, -windowMonths, 0)
	for _, item := range feed.Items {
		if len(report.Items) >= limit {
			break
		}
		if item == nil {
			continue
		}

		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		if item.PubDateParsed == nil {
			continue
		}
		published := *item.PubDateParsed
		if published.Before(cutoff) {
			continue
		}

		source := ""
		if item.Source != nil {
			source = strings.TrimSpace(item.Source.Title)
		}

		report.Items = append(report.Items, domain.NewsItem{
			Title:       title,
			URL:         strings.TrimSpace(item.Link),
			Source:      source,
			PublishedAt: published,
			Date:        published.Format(displayDateLayout),
		})
	}

	return report
}

func (e *Extractor) searchURL(query string) string {
	params := url.Values{}
	params.Set("q", query)
	params.Set("hl", e.locale.HL)
	params.Set("gl", e.locale.GL)
	params.Set("ceid", e.locale.CEID)
	return e.baseURL + "/rss/search?" + params.Encode()
}

func (e *Extractor) fetchFeed(ctx context.Context, feedURL string) (*rss.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned %s", resp.Status)
	}

	feed, err := e.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	return feed, nil
}
