package notify

import (
	"fmt"
	"strings"

	"app/models"
)

// Slack message colors: red when something is fully out of stock, orange when
// only low-stock products remain.
const (
	colorDanger  = "#d32f2f"
	colorWarning = "#f57c00"
)

type slackAttachment struct {
	Color  string       `json:"color"`
	Title  string       `json:"title"`
	Text   string       `json:"text"`
	Fields []slackField `json:"fields,omitempty"`
}

type slackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

type slackMessage struct {
	Channel     string            `json:"channel,omitempty"`
	Text        string            `json:"text"`
	Attachments []slackAttachment `json:"attachments"`
}

func slackPayload(cfg models.SlackSettings, set chatSet, shop models.ShopInfo) slackMessage {
	att := slackAttachment{
		Color: colorWarning,
		Title: fmt.Sprintf("Inventory alert for %s", shop.Name),
		Text:  summaryLine(set),
	}
	if len(set.OutOfStock) > 0 {
		att.Color = colorDanger
		att.Fields = append(att.Fields, slackField{Title: "Out of stock", Value: productLines(set.OutOfStock), Short: false})
	}
	if len(set.LowStock) > 0 {
		att.Fields = append(att.Fields, slackField{Title: "Low stock", Value: productLines(set.LowStock), Short: false})
	}

	return slackMessage{
		Channel:     cfg.Channel,
		Text:        fmt.Sprintf("Inventory alert: %s", summaryLine(set)),
		Attachments: []slackAttachment{att},
	}
}

type discordEmbed struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Color       int            `json:"color"`
	Fields      []discordField `json:"fields,omitempty"`
}

type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordMessage struct {
	Username string         `json:"username,omitempty"`
	Content  string         `json:"content"`
	Embeds   []discordEmbed `json:"embeds"`
}

func discordPayload(cfg models.DiscordSettings, set chatSet, shop models.ShopInfo) discordMessage {
	embed := discordEmbed{
		Title:       fmt.Sprintf("Inventory alert for %s", shop.Name),
		Description: summaryLine(set),
		Color:       0xF57C00,
	}
	if len(set.OutOfStock) > 0 {
		embed.Color = 0xD32F2F
		embed.Fields = append(embed.Fields, discordField{Name: "Out of stock", Value: productLines(set.OutOfStock)})
	}
	if len(set.LowStock) > 0 {
		embed.Fields = append(embed.Fields, discordField{Name: "Low stock", Value: productLines(set.LowStock)})
	}

	return discordMessage{
		Username: cfg.Username,
		Content:  fmt.Sprintf("Inventory alert: %s", summaryLine(set)),
		Embeds:   []discordEmbed{embed},
	}
}

func summaryLine(set chatSet) string {
	return fmt.Sprintf("%d out of stock, %d low on stock", len(set.OutOfStock), len(set.LowStock))
}

func productLines(products []models.ProductSignal) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%s (%d left)", p.Title, p.Stock))
	}
	return strings.Join(lines, "\n")
}
