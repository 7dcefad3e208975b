package models

// EmailSettings configures the email alert channel.
type EmailSettings struct {
	Enabled               bool   `json:"enabled"`
	RecipientEmail        string `json:"recipient_email"`
	OOSAlertsEnabled      bool   `json:"oos_alerts_enabled"`
	CriticalAlertsEnabled bool   `json:"critical_alerts_enabled"`
}

// SlackSettings configures the Slack webhook channel.
type SlackSettings struct {
	Enabled    bool   `json:"enabled"`
	WebhookURL string `json:"webhook_url"`
	Channel    string `json:"channel"`
}

// DiscordSettings configures the Discord webhook channel.
type DiscordSettings struct {
	Enabled    bool   `json:"enabled"`
	WebhookURL string `json:"webhook_url"`
	Username   string `json:"username"`
}

// NotificationSettings is the full per-store channel configuration. It is
// saved and loaded as one document; a save replaces the whole value.
type NotificationSettings struct {
	Email   EmailSettings   `json:"email"`
	Slack   SlackSettings   `json:"slack"`
	Discord DiscordSettings `json:"discord"`
}

// VisibilityPolicy is the desired-state policy for product visibility.
type VisibilityPolicy struct {
	Enabled           bool `json:"enabled"`
	HideOutOfStock    bool `json:"hide_out_of_stock"`
	ShowWhenRestocked bool `json:"show_when_restocked"`
}

// DispatchResult records one attempted notification channel.
type DispatchResult struct {
	Channel string `json:"channel"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// --- API Request Structs ---

// SendAlertsRequest is the body for POST /notifications/send.
type SendAlertsRequest struct {
	Products  []ProductSignal `json:"products"`
	Threshold int             `json:"threshold"`
}

// RiskReportRequest is the body for POST /inventory/risk.
type RiskReportRequest struct {
	Products  []ProductSignal `json:"products"`
	Threshold int             `json:"threshold"`
	Policy    string          `json:"policy"` // "threshold" or "fixed"
}

// SuggestionRequest is the body for POST /inventory/suggestions.
type SuggestionRequest struct {
	Product   ProductSignal `json:"product"`
	Threshold int           `json:"threshold"`
	Mode      string        `json:"mode"` // "" (rule-based) or "data"
	Seed      *int64        `json:"seed,omitempty"`
}

// BulkVisibilityRequest is the body for POST /visibility/bulk.
type BulkVisibilityRequest struct {
	Products []StockLevel `json:"products"`
}
