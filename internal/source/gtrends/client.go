// Package gtrends talks to the Google Trends widget API: the interest
// time-series behind the scorer and the daily trending searches behind
// each region's topic list.
package gtrends

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/michy-dev/africa-trends-live/internal/domain"
)

const (
	explorePath   = "/trends/api/explore"
	multilinePath = "/trends/api/widgetdata/multiline"
	dailyPath     = "/trends/api/dailytrends"

	// Fixed lookback window for the interest series.
	lookbackWindow = "now 7-d"

	maxTopics          = 10
	maxRelatedArticles = 2
)

// Client issues widget-API requests. Responses arrive with an anti-JSON
// prefix (`)]}'` plus a comma on some endpoints) that must be stripped
// before decoding.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewClient wires an HTTP client; a nil client gets a 10s-timeout default.
func NewClient(baseURL, userAgent string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    client,
	}
}

// InterestOverTime fetches the per-keyword interest series for the trailing
// seven days, ordered by time ascending.
func (c *Client) InterestOverTime(ctx context.Context, keywords []string, geo string) ([]domain.InterestSample, error) {
	widget, err := c.exploreTimeseries(ctx, keywords, geo)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("hl", "en-US")
	params.Set("tz", "0")
	params.Set("req", string(widget.Request))
	params.Set("token", widget.Token)

	raw, err := c.fetchJSON(ctx, multilinePath, params)
	if err != nil {
		return nil, fmt.Errorf("widgetdata: %w", err)
	}

	var payload struct {
		Default struct {
			TimelineData []struct {
				Time  string `json:"time"`
				Value []int  `json:"value"`
			} `json:"timelineData"`
		} `json:"default"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode timeline: %w", err)
	}

	samples := make([]domain.InterestSample, 0, len(payload.Default.TimelineData))
	for _, point := range payload.Default.TimelineData {
		seconds, err := strconv.ParseInt(point.Time, 10, 64)
		if err != nil {
			continue
		}
		samples = append(samples, domain.InterestSample{
			Time:   time.Unix(seconds, 0).UTC(),
			Values: point.Value,
		})
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Time.Before(samples[j].Time)
	})

	return samples, nil
}

// DailyTrends fetches the trending searches for a geo, capped in document
// order at maxTopics topics and maxRelatedArticles articles each.
func (c *Client) DailyTrends(ctx context.Context, geo string) ([]domain.TrendTopic, error) {
	params := url.Values{}
	params.Set("hl", "en-US")
	params.Set("tz", "0")
	params.Set("geo", geo)
	params.Set("ns", "15")

	raw, err := c.fetchJSON(ctx, dailyPath, params)
	if err != nil {
		return nil, fmt.Errorf("dailytrends: %w", err)
	}

	var payload struct {
		Default struct {
			TrendingSearchesDays []struct {
				TrendingSearches []struct {
					Title struct {
						Query string `json:"query"`
					} `json:"title"`
					FormattedTraffic string `json:"formattedTraffic"`
					Articles         []struct {
						Title  string `json:"title"`
						Source string `json:"source"`
						URL    string `json:"url"`
					} `json:"articles"`
				} `json:"trendingSearches"`
			} `json:"trendingSearchesDays"`
		} `json:"default"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode dailytrends: %w", err)
	}

	if len(payload.Default.TrendingSearchesDays) == 0 {
		return []domain.TrendTopic{}, nil
	}

	searches := payload.Default.TrendingSearchesDays[0].TrendingSearches
	topics := make([]domain.TrendTopic, 0, maxTopics)
	for _, trend := range searches {
		if len(topics) >= maxTopics {
			break
		}

		topic := domain.TrendTopic{
			Title:    trend.Title.Query,
			Traffic:  trend.FormattedTraffic,
			Articles: []domain.RelatedArticle{},
		}
		for _, article := range trend.Articles {
			if len(topic.Articles) >= maxRelatedArticles {
				break
			}
			topic.Articles = append(topic.Articles, domain.RelatedArticle{
				Title:  article.Title,
				Source: article.Source,
				URL:    article.URL,
			})
		}
		topics = append(topics, topic)
	}

	return topics, nil
}

// timeseriesWidget is the explore-phase handle needed to request the series.
type timeseriesWidget struct {
	Token   string
	Request json.RawMessage
}

func (c *Client) exploreTimeseries(ctx context.Context, keywords []string, geo string) (timeseriesWidget, error) {
	type comparisonItem struct {
		Keyword string `json:"keyword"`
		Geo     string `json:"geo"`
		Time    string `json:"time"`
	}

	items := make([]comparisonItem, 0, len(keywords))
	for _, kw := range keywords {
		items = append(items, comparisonItem{Keyword: kw, Geo: geo, Time: lookbackWindow})
	}

	reqBody, err := json.Marshal(struct {
		ComparisonItem []comparisonItem `json:"comparisonItem"`
		Category       int              `json:"category"`
		Property       string           `json:"property"`
	}{ComparisonItem: items})
	if err != nil {
		return timeseriesWidget{}, fmt.Errorf("encode explore request: %w", err)
	}

	params := url.Values{}
	params.Set("hl", "en-US")
	params.Set("tz", "0")
	params.Set("req", string(reqBody))

	raw, err := c.fetchJSON(ctx, explorePath, params)
	if err != nil {
		return timeseriesWidget{}, fmt.Errorf("explore: %w", err)
	}

	var payload struct {
		Widgets []struct {
			ID      string          `json:"id"`
			Token   string          `json:"token"`
			Request json.RawMessage `json:"request"`
		} `json:"widgets"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return timeseriesWidget{}, fmt.Errorf("decode explore: %w", err)
	}

	for _, widget := range payload.Widgets {
		if widget.ID == "TIMESERIES" {
			return timeseriesWidget{Token: widget.Token, Request: widget.Request}, nil
		}
	}

	return timeseriesWidget{}, fmt.Errorf("explore response has no timeseries widget")
}

// fetchJSON issues a GET and strips the anti-JSON prefix from the body.
func (c *Client) fetchJSON(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trends returned %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	start := bytes.IndexByte(raw, '{')
	if start < 0 {
		return nil, fmt.Errorf("no JSON object in response")
	}

	return raw[start:], nil
}
