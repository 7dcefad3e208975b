package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"app/models"
)

// SendGridSender delivers alert emails through the SendGrid v3 mail API.
type SendGridSender struct {
	APIKey    string
	FromEmail string
	BaseURL   string
	Client    *http.Client
}

// NewSendGridSender builds a sender for the given API key and from address.
func NewSendGridSender(apiKey, fromEmail string) *SendGridSender {
	return &SendGridSender{
		APIKey:    apiKey,
		FromEmail: fromEmail,
		BaseURL:   "https://api.sendgrid.com",
		Client:    &http.Client{Timeout: 30 * time.Second},
	}
}

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgPersonalization struct {
	To []sgAddress `json:"to"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgMail struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

func (s *SendGridSender) Send(ctx context.Context, cfg models.EmailSettings, products []models.ProductSignal, shop models.ShopInfo) Outcome {
	if s.APIKey == "" {
		return Outcome{Success: false, Message: "email transport is not configured"}
	}

	mail := sgMail{
		Personalizations: []sgPersonalization{{To: []sgAddress{{Email: cfg.RecipientEmail}}}},
		From:             sgAddress{Email: s.FromEmail, Name: shop.Name},
		Subject:          fmt.Sprintf("Inventory alert: %d products need attention", len(products)),
		Content:          []sgContent{{Type: "text/plain", Value: emailBody(products, shop)}},
	}

	body, err := json.Marshal(mail)
	if err != nil {
		return Outcome{Success: false, Message: fmt.Sprintf("encode mail: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return Outcome{Success: false, Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return Outcome{Success: false, Message: fmt.Sprintf("send mail: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Outcome{Success: false, Message: fmt.Sprintf("mail API returned %d: %s", resp.StatusCode, string(detail))}
	}

	return Outcome{Success: true, Message: fmt.Sprintf("Alert email sent to %s", cfg.RecipientEmail)}
}

func emailBody(products []models.ProductSignal, shop models.ShopInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Inventory alert for %s (%s)\n\n", shop.Name, shop.Domain)
	for _, p := range products {
		if p.Stock == 0 {
			fmt.Fprintf(&b, "OUT OF STOCK: %s\n", p.Title)
		} else {
			fmt.Fprintf(&b, "LOW STOCK: %s (%d left)\n", p.Title, p.Stock)
		}
	}
	b.WriteString("\nReview these products in your dashboard.\n")
	return b.String()
}
