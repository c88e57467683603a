package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/michy-dev/africa-trends-live/internal/domain"
	"github.com/michy-dev/africa-trends-live/internal/ports"
)

// Notifier sends digests to a Telegram chat via bot API.
type Notifier struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier registers bot token and chat identifier.
func NewNotifier(botToken, chatID string) *Notifier {
	return &Notifier{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  "https://api.telegram.org",
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// PublishDigest posts a Markdown message to Telegram.
func (n *Notifier) PublishDigest(ctx context.Context, digest string) error {
	if n.botToken == "" || n.chatID == "" || n.client == nil {
		return fmt.Errorf("telegram notifier misconfigured")
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.botToken)
	form := url.Values{}
	form.Set("chat_id", n.chatID)
	form.Set("text", digest)
	form.Set("parse_mode", "Markdown")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram error: %s", resp.Status)
	}

	return nil
}

// RisingDigest renders the rising-artist section of a snapshot as a short
// Markdown message.
func RisingDigest(snap *domain.Snapshot) string {
	var b strings.Builder
	b.WriteString("*Rising artists*\n")
	b.WriteString(snap.UpdatedAt.Format("2 Jan 2006 15:04 MST"))
	b.WriteString("\n\n")
	for _, artist := range snap.Rising {
		fmt.Fprintf(&b, "%s %s %s (%s)\n", artist.Country, artist.Name, artist.Change, artist.Reason)
	}
	if len(snap.Degraded) > 0 {
		fmt.Fprintf(&b, "\n_%d sources on fallback data_\n", len(snap.Degraded))
	}
	return b.String()
}
