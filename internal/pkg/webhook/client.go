package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

var (
	ErrWebhookNotFound  = errors.New("webhook URL not found (404): check the URL is correct")
	ErrMethodNotAllowed = errors.New("webhook does not accept POST requests (405): this URL is not a webhook endpoint")
	ErrInvalidEndpoint  = errors.New("URL does not appear to be a valid webhook endpoint")
)

// StatusError is returned for non-2xx responses other than 404 and 405.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook failed with status %d: %s", e.StatusCode, e.Body)
}

const maxBodyBytes = 64 << 10

// DeliveryHeader carries the per-request delivery id.
const DeliveryHeader = "X-Delivery-ID"

// Message is the JSON body posted to chat-ops endpoints.
type Message struct {
	Title         string         `json:"title"`
	Text          string         `json:"text"`
	Summary       string         `json:"summary"`
	Events        []MessageEvent `json:"events"`
	CustomMessage string         `json:"custom_message,omitempty"`
}

type MessageEvent struct {
	EmployeeName string `json:"employee_name"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Description  string `json:"description,omitempty"`
}

type Sender interface {
	// Send posts msg to url and returns the delivery id.
	Send(ctx context.Context, url string, msg Message) (string, error)
}

type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

func (c *Client) Send(ctx context.Context, url string, msg Message) (string, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("marshal webhook message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build webhook request: %w", err)
	}
	deliveryID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(DeliveryHeader, deliveryID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read webhook response: %w", err)
	}
	body := string(raw)

	slog.Debug("Webhook response", "delivery_id", deliveryID, "status", resp.StatusCode, "body_length", len(body))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", ErrWebhookNotFound
	case resp.StatusCode == http.StatusMethodNotAllowed:
		return "", ErrMethodNotAllowed
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	if !IsValidResponse(url, body, resp.StatusCode) {
		return "", ErrInvalidEndpoint
	}

	slog.Info("Webhook delivered", "delivery_id", deliveryID, "status", resp.StatusCode)
	return deliveryID, nil
}
