package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPWebhookSender posts JSON payloads with a plain net/http client.
// Delivery is synchronous and single-attempt; retry policy belongs to the
// caller reissuing the whole dispatch.
type HTTPWebhookSender struct {
	Client *http.Client
}

// NewHTTPWebhookSender returns a sender with a 10 second request timeout.
func NewHTTPWebhookSender() *HTTPWebhookSender {
	return &HTTPWebhookSender{Client: &http.Client{Timeout: 10 * time.Second}}
}

func (s *HTTPWebhookSender) Send(ctx context.Context, url string, payload interface{}) Outcome {
	body, err := json.Marshal(payload)
	if err != nil {
		return Outcome{Success: false, Message: fmt.Sprintf("encode payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Outcome{Success: false, Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return Outcome{Success: false, Message: fmt.Sprintf("post webhook: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Outcome{Success: false, Message: fmt.Sprintf("webhook returned %d: %s", resp.StatusCode, string(detail))}
	}

	return Outcome{Success: true, Message: "Webhook delivered"}
}
