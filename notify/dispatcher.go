package notify

import (
	"context"
	"fmt"
	"time"

	"app/models"
)

// Outcome is what a channel sender reports back.
type Outcome struct {
	Success bool
	Message string
}

// EmailSender delivers an inventory alert email.
type EmailSender interface {
	Send(ctx context.Context, cfg models.EmailSettings, products []models.ProductSignal, shop models.ShopInfo) Outcome
}

// WebhookSender posts a JSON payload to a chat webhook.
type WebhookSender interface {
	Send(ctx context.Context, url string, payload interface{}) Outcome
}

// Dispatcher fans one alert out across the configured channels. Channels are
// independent failure domains: a failing channel never blocks the others.
type Dispatcher struct {
	Email   EmailSender
	Slack   WebhookSender
	Discord WebhookSender
}

// SendAll attempts every eligible channel in order (email, Slack, Discord)
// and returns one DispatchResult per attempt. A channel that is disabled or
// missing its required field is skipped without a result.
func (d *Dispatcher) SendAll(ctx context.Context, settings models.NotificationSettings, products []models.ProductSignal, shop models.ShopInfo, threshold int) []models.DispatchResult {
	results := make([]models.DispatchResult, 0, 3)

	if settings.Email.Enabled && settings.Email.RecipientEmail != "" {
		results = append(results, d.sendEmail(ctx, settings.Email, products, shop, threshold))
	}

	// Chat channels ignore the per-type email toggles: they always report
	// out-of-stock plus the fixed 1..5 low-stock band.
	chatSet := chatCandidates(products)

	if settings.Slack.Enabled && settings.Slack.WebhookURL != "" {
		payload := slackPayload(settings.Slack, chatSet, shop)
		out := d.Slack.Send(ctx, settings.Slack.WebhookURL, payload)
		results = append(results, models.DispatchResult{Channel: "slack", Success: out.Success, Message: out.Message})
	}

	if settings.Discord.Enabled && settings.Discord.WebhookURL != "" {
		payload := discordPayload(settings.Discord, chatSet, shop)
		out := d.Discord.Send(ctx, settings.Discord.WebhookURL, payload)
		results = append(results, models.DispatchResult{Channel: "discord", Success: out.Success, Message: out.Message})
	}

	return results
}

func (d *Dispatcher) sendEmail(ctx context.Context, cfg models.EmailSettings, products []models.ProductSignal, shop models.ShopInfo, threshold int) models.DispatchResult {
	candidates := emailCandidates(cfg, products, threshold)
	if len(candidates) == 0 {
		return models.DispatchResult{
			Channel: "email",
			Success: true,
			Message: "No products match the configured alert criteria; nothing to send",
		}
	}

	out := d.Email.Send(ctx, cfg, candidates, shop)
	if !out.Success {
		return models.DispatchResult{Channel: "email", Success: false, Message: "Email error: " + out.Message}
	}
	return models.DispatchResult{Channel: "email", Success: true, Message: out.Message}
}

// TestAll exercises the full dispatch path with two synthetic products so a
// store can verify its channel configuration without touching real data.
func (d *Dispatcher) TestAll(ctx context.Context, settings models.NotificationSettings, shop models.ShopInfo) []models.DispatchResult {
	now := time.Now()
	canned := []models.ProductSignal{
		{ID: "test-oos", Title: "Test product (out of stock)", Stock: 0, CreatedAt: now},
		{ID: "test-low", Title: "Test product (low stock)", Stock: 2, CreatedAt: now},
	}
	return d.SendAll(ctx, settings, canned, shop, 5)
}

// Summarize folds per-channel results into the caller-facing message.
func Summarize(results []models.DispatchResult) (bool, string) {
	if len(results) == 0 {
		return false, "No notification channels are enabled"
	}

	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
		}
	}

	switch {
	case succeeded == len(results):
		return true, fmt.Sprintf("Alerts sent to all %d channels", len(results))
	case succeeded > 0:
		return true, fmt.Sprintf("Alerts sent to %d/%d channels", succeeded, len(results))
	default:
		return false, "Failed to send alerts on every channel"
	}
}

// emailCandidates builds the email product set from the per-type toggles.
// With both toggles off it falls back to the pre-toggle behavior of alerting
// on everything low or out of stock.
func emailCandidates(cfg models.EmailSettings, products []models.ProductSignal, threshold int) []models.ProductSignal {
	var picked []models.ProductSignal

	if cfg.OOSAlertsEnabled || cfg.CriticalAlertsEnabled {
		if cfg.OOSAlertsEnabled {
			for _, p := range products {
				if p.Stock == 0 {
					picked = append(picked, p)
				}
			}
		}
		if cfg.CriticalAlertsEnabled {
			for _, p := range products {
				if p.Stock > 0 && p.Stock <= threshold/2 {
					picked = append(picked, p)
				}
			}
		}
	} else {
		for _, p := range products {
			if p.Stock <= threshold {
				picked = append(picked, p)
			}
		}
	}

	return dedupeByID(picked)
}

// chatCandidates is the fixed set for Slack and Discord: out of stock plus
// stock in (0,5], regardless of any email toggle.
func chatCandidates(products []models.ProductSignal) chatSet {
	var set chatSet
	for _, p := range products {
		if p.Stock == 0 {
			set.OutOfStock = append(set.OutOfStock, p)
		} else if p.Stock <= 5 {
			set.LowStock = append(set.LowStock, p)
		}
	}
	return set
}

type chatSet struct {
	OutOfStock []models.ProductSignal
	LowStock   []models.ProductSignal
}

func dedupeByID(products []models.ProductSignal) []models.ProductSignal {
	seen := make(map[string]bool, len(products))
	out := make([]models.ProductSignal, 0, len(products))
	for _, p := range products {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}
