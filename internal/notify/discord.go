package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	colorGreen  = 0x2ECC71 // market up
	colorRed    = 0xE74C3C // market down
	colorYellow = 0xF1C40F // flat
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Thumbnail   *discordThumbnail   `json:"thumbnail,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordThumbnail struct {
	URL string `json:"url"`
}

// SendDailyDigest sends the daily market digest as a Discord embed.
func (d *DiscordNotifier) SendDailyDigest(ctx context.Context, digest *DigestPayload) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildDigestEmbed(digest)},
	}
	return d.post(ctx, payload)
}

func buildDigestEmbed(digest *DigestPayload) discordEmbed {
	embed := discordEmbed{
		Title: fmt.Sprintf("Market Digest: %s", digest.Date),
		Color: changeColor(digest.PercentChange),
		Fields: []discordEmbedField{
			{Name: "Average", Value: fmt.Sprintf("$%.2f", digest.AveragePrice), Inline: true},
			{Name: "Change", Value: fmt.Sprintf("%+.2f%%", digest.PercentChange), Inline: true},
			{Name: "Listings", Value: fmt.Sprintf("%d", digest.TotalSold), Inline: true},
			{Name: "High", Value: fmt.Sprintf("$%.2f", digest.HighestSale), Inline: true},
			{Name: "Low", Value: fmt.Sprintf("$%.2f", digest.LowestSale), Inline: true},
		},
	}

	// Discord allows max 25 fields per embed; the sample is capped well
	// below that upstream, but guard anyway.
	limit := min(len(digest.TopItems), 5)
	for i := range limit {
		item := &digest.TopItems[i]
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name:  fmt.Sprintf("#%d %s", i+1, item.Title),
			Value: fmt.Sprintf("$%.2f", item.Price),
		})
	}

	if len(digest.TopItems) > 0 && digest.TopItems[0].ImageURL != "" {
		embed.Thumbnail = &discordThumbnail{URL: digest.TopItems[0].ImageURL}
	}

	return embed
}

func changeColor(percentChange float64) int {
	switch {
	case percentChange > 0:
		return colorGreen
	case percentChange < 0:
		return colorRed
	default:
		return colorYellow
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
