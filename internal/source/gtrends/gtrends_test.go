package gtrends

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const exploreBody = `)]}'
{"widgets":[{"id":"TIMESERIES","token":"tok-123","request":{"time":"now 7-d"}},{"id":"RELATED_QUERIES","token":"other"}]}`

func timelineBody(points string) string {
	return ")]}',\n" + fmt.Sprintf(`{"default":{"timelineData":[%s]}}`, points)
}

func newFixtureServer(t *testing.T, timeline string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case explorePath:
			_, _ = w.Write([]byte(exploreBody))
		case multilinePath:
			if got := r.URL.Query().Get("token"); got != "tok-123" {
				t.Errorf("widgetdata called with token %q", got)
			}
			_, _ = w.Write([]byte(timeline))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestScorerRanksAndNormalizes(t *testing.T) {
	t.Parallel()

	// A totals 80 (earlier half 20, recent half 60), B totals 40.
	timeline := timelineBody(`{"time":"1000","value":[10,10]},{"time":"2000","value":[10,10]},{"time":"3000","value":[30,10]},{"time":"4000","value":[30,10]}`)
	server := newFixtureServer(t, timeline)
	defer server.Close()

	scorer := NewScorer(NewClient(server.URL, "test-agent", server.Client()), nil)
	report := scorer.Score(context.Background(), []string{"A", "B"}, "NG")

	if report.Degraded {
		t.Fatalf("unexpected degraded report: %s", report.Reason)
	}
	if len(report.Rankings) != 2 {
		t.Fatalf("expected 2 rankings, got %d", len(report.Rankings))
	}
	if report.Rankings[0].Name != "A" || report.Rankings[0].Score != 100 {
		t.Fatalf("top ranking = %+v, want A at 100", report.Rankings[0])
	}
	if report.Rankings[1].Name != "B" || report.Rankings[1].Score != 50 {
		t.Fatalf("second ranking = %+v, want B at 50", report.Rankings[1])
	}

	for _, score := range report.Rankings {
		if score.Score < 0 || score.Score > 100 {
			t.Errorf("score %d for %s out of [0,100]", score.Score, score.Name)
		}
	}

	if report.Changes[0].Name != "A" || report.Changes[0].PercentChange != 200 {
		t.Fatalf("change for A = %+v, want +200", report.Changes[0])
	}
	if report.Changes[1].PercentChange != 0 {
		t.Fatalf("change for B = %+v, want 0", report.Changes[1])
	}
}

func TestScorerAllZeroSeries(t *testing.T) {
	t.Parallel()

	timeline := timelineBody(`{"time":"1000","value":[0,0]},{"time":"2000","value":[0,0]}`)
	server := newFixtureServer(t, timeline)
	defer server.Close()

	scorer := NewScorer(NewClient(server.URL, "test-agent", server.Client()), nil)
	report := scorer.Score(context.Background(), []string{"A", "B"}, "NG")

	for _, score := range report.Rankings {
		if score.Score != 0 {
			t.Errorf("score for %s = %d, want 0", score.Name, score.Score)
		}
	}
	for _, change := range report.Changes {
		if change.PercentChange != 0 {
			t.Errorf("change for %s = %d, want 0", change.Name, change.PercentChange)
		}
	}
}

func TestScorerFetchFailureIsNeutral(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer server.Close()

	scorer := NewScorer(NewClient(server.URL, "test-agent", server.Client()), nil)
	report := scorer.Score(context.Background(), []string{"A", "B"}, "NG")

	if !report.Degraded {
		t.Fatal("expected degraded report on fetch failure")
	}
	if len(report.Rankings) != 2 || len(report.Changes) != 2 {
		t.Fatalf("neutral report incomplete: %d rankings, %d changes", len(report.Rankings), len(report.Changes))
	}
	for i := range report.Rankings {
		if report.Rankings[i].Score != 0 || report.Changes[i].PercentChange != 0 {
			t.Fatalf("neutral report not zeroed: %+v / %+v", report.Rankings[i], report.Changes[i])
		}
	}
}

func TestDailyTopicsCapsInOrder(t *testing.T) {
	t.Parallel()

	var searches string
	for i := 0; i < 12; i++ {
		if i > 0 {
			searches += ","
		}
		searches += fmt.Sprintf(`{"title":{"query":"topic-%d"},"formattedTraffic":"%dK+","articles":[{"title":"a1","source":"s1","url":"u1"},{"title":"a2","source":"s2","url":"u2"},{"title":"a3","source":"s3","url":"u3"}]}`, i, i)
	}
	body := ")]}',\n" + fmt.Sprintf(`{"default":{"trendingSearchesDays":[{"trendingSearches":[%s]}]}}`, searches)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != dailyPath {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	topics := NewTopics(NewClient(server.URL, "test-agent", server.Client()), nil)
	report := topics.DailyTopics(context.Background(), "NG")

	if report.Degraded {
		t.Fatalf("unexpected degraded report: %s", report.Reason)
	}
	if len(report.Topics) != maxTopics {
		t.Fatalf("expected %d topics, got %d", maxTopics, len(report.Topics))
	}
	if report.Topics[0].Title != "topic-0" || report.Topics[9].Title != "topic-9" {
		t.Fatalf("topics out of document order: first=%s last=%s", report.Topics[0].Title, report.Topics[9].Title)
	}
	for _, topic := range report.Topics {
		if len(topic.Articles) != maxRelatedArticles {
			t.Fatalf("topic %s has %d articles, want %d", topic.Title, len(topic.Articles), maxRelatedArticles)
		}
	}
}

func TestDailyTopicsFailureYieldsEmpty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	topics := NewTopics(NewClient(server.URL, "test-agent", server.Client()), nil)
	report := topics.DailyTopics(context.Background(), "NG")

	if !report.Degraded {
		t.Fatal("expected degraded report")
	}
	if len(report.Topics) != 0 {
		t.Fatalf("expected empty topic list, got %d", len(report.Topics))
	}
}
