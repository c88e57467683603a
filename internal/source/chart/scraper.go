// Package chart scrapes per-country streaming chart pages. This is the one
// source whose failure path returns non-empty domain data: the chart tab
// must never appear empty, so extraction failures substitute the static
// backup list for the requested country.
package chart

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/michy-dev/africa-trends-live/internal/catalog"
	"github.com/michy-dev/africa-trends-live/internal/domain"
	"github.com/michy-dev/africa-trends-live/internal/format"
	"github.com/michy-dev/africa-trends-live/internal/ports"
)

const maxTracks = 5

var streamsExpr = regexp.MustCompile(`^\d{1,3}(?:,\d{3})*$|^\d+$`)

// Scraper extracts the top chart rows for a country code.
type Scraper struct {
	baseURL   string
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

var _ ports.ChartSource = (*Scraper)(nil)

// NewScraper wires an HTTP client; a nil client gets a 10s-timeout default.
func NewScraper(baseURL, userAgent string, client *http.Client, logger *slog.Logger) *Scraper {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Scraper{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    client,
		logger:    logger,
	}
}

// TopTracks returns up to five rank-ordered tracks for the country chart,
// or the static backup list when the page is unreachable or yields no rows.
func (s *Scraper) TopTracks(ctx context.Context, countryCode string) domain.ChartReport {
	pageURL := fmt.Sprintf("%s/spotify/country/%s_daily.html", s.baseURL, countryCode)

	doc, err := s.fetchDocument(ctx, pageURL)
	if err != nil {
		s.warn("chart fetch failed", "country", countryCode, "error", err)
		return backupReport(countryCode, err.Error())
	}

	tracks := extractTracks(doc)
	if len(tracks) == 0 {
		s.warn("chart page yielded no rows", "country", countryCode)
		return backupReport(countryCode, "no chart rows matched")
	}

	return domain.ChartReport{Tracks: tracks}
}

func (s *Scraper) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chart page returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

// extractTracks scans table rows in document order for the four-cell chart
// pattern, stopping once maxTracks rows matched.
func extractTracks(doc *goquery.Document) []domain.ChartTrack {
	var tracks []domain.ChartTrack

	doc.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if track, ok := parseRow(row); ok {
			tracks = append(tracks, track)
		}
		return len(tracks) < maxTracks
	})

	return tracks
}

// parseRow looks for four consecutive cells holding rank, track link,
// artist link, and a separator-formatted stream count. Rows with extra
// leading or trailing cells still match; the pattern may start anywhere.
func parseRow(row *goquery.Selection) (domain.ChartTrack, bool) {
	cells := row.Find("td")
	n := cells.Length()

	for i := 0; i+4 <= n; i++ {
		rankCell := cells.Eq(i)
		if rankCell.Find("a").Length() > 0 {
			continue
		}
		rank, err := strconv.Atoi(strings.TrimSpace(rankCell.Text()))
		if err != nil || rank <= 0 {
			continue
		}

		titleLink := cells.Eq(i + 1).Find("a").First()
		artistLink := cells.Eq(i + 2).Find("a").First()
		if titleLink.Length() == 0 || artistLink.Length() == 0 {
			continue
		}

		streamsText := strings.TrimSpace(cells.Eq(i + 3).Text())
		if !streamsExpr.MatchString(streamsText) {
			continue
		}
		streams, err := strconv.Atoi(strings.ReplaceAll(streamsText, ",", ""))
		if err != nil {
			continue
		}

		return domain.ChartTrack{
			Rank:    rank,
			Title:   strings.TrimSpace(titleLink.Text()),
			Artist:  strings.TrimSpace(artistLink.Text()),
			Streams: format.Magnitude(streams),
		}, true
	}

	return domain.ChartTrack{}, false
}

func backupReport(countryCode, reason string) domain.ChartReport {
	return domain.ChartReport{
		Tracks:   catalog.BackupChart(countryCode),
		Degraded: true,
		Reason:   reason,
	}
}

func (s *Scraper) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
