// pkg/push/expo.go
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the Expo push API endpoint.
const DefaultBaseURL = "https://exp.host/--/api/v2/push/send"

// ExpoClient implements Client against the Expo push HTTP API.
type ExpoClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewExpoClient creates a new Expo push client
func NewExpoClient(cfg Config) *ExpoClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ExpoClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type expoMessage struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type expoTicket struct {
	Status  string            `json:"status"`
	ID      string            `json:"id,omitempty"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type expoResponse struct {
	Data []expoTicket `json:"data"`
}

// Publish sends one notification to one Expo push token. Provider-reported
// ticket errors (e.g. DeviceNotRegistered) are surfaced as Go errors so the
// caller's failure policy applies to them like any transport failure.
func (c *ExpoClient) Publish(ctx context.Context, token, title, body string) error {
	payload, err := json.Marshal([]expoMessage{{
		To:    token,
		Title: title,
		Body:  body,
	}})
	if err != nil {
		return fmt.Errorf("marshal push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send push request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read push response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push provider returned status %d: %s", resp.StatusCode, raw)
	}

	var parsed expoResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("decode push response: %w", err)
	}

	for _, ticket := range parsed.Data {
		if ticket.Status == "error" {
			if code, ok := ticket.Details["error"]; ok {
				return fmt.Errorf("push ticket error %s: %s", code, ticket.Message)
			}
			return fmt.Errorf("push ticket error: %s", ticket.Message)
		}
	}

	return nil
}
