package calendarific

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/paracal/paracal-backend-go/internal/config"
)

var ErrMissingAPIKey = errors.New("calendarific API key is not configured")

const maxBodyBytes = 1 << 20

// Client calls the Calendarific holidays API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	country    string
}

// NewClient creates a new Calendarific client
func NewClient(cfg config.CalendarificConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		country:    cfg.Country,
	}
}

// APIError represents a Calendarific API error
type APIError struct {
	StatusCode int
	ErrorType  string
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("calendarific API error [%d] %s: %s", e.StatusCode, e.ErrorType, e.Detail)
}

// Holiday is one entry of the holidays response.
type Holiday struct {
	Name        string
	Description string
	Date        time.Time
	Types       []string
	PrimaryType string
}

type apiResponse struct {
	Meta struct {
		Code        int    `json:"code"`
		ErrorType   string `json:"error_type"`
		ErrorDetail string `json:"error_detail"`
	} `json:"meta"`
	// Response is an object on success and an empty array on errors.
	Response json.RawMessage `json:"response"`
}

type holidaysPayload struct {
	Holidays []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Date        struct {
			ISO string `json:"iso"`
		} `json:"date"`
		Type        []string `json:"type"`
		PrimaryType string   `json:"primary_type"`
	} `json:"holidays"`
}

// Holidays returns every holiday the API knows for the configured country and year.
func (c *Client) Holidays(ctx context.Context, year int) ([]Holiday, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("country", c.country)
	params.Set("year", strconv.Itoa(year))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/holidays?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build calendarific request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calendarific request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read calendarific response: %w", err)
	}

	var body apiResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{StatusCode: resp.StatusCode, Detail: http.StatusText(resp.StatusCode)}
		}
		return nil, fmt.Errorf("decode calendarific response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || body.Meta.Code != http.StatusOK || body.Meta.ErrorType != "" {
		code := body.Meta.Code
		if code == 0 {
			code = resp.StatusCode
		}
		return nil, &APIError{StatusCode: code, ErrorType: body.Meta.ErrorType, Detail: body.Meta.ErrorDetail}
	}

	var payload holidaysPayload
	if err := json.Unmarshal(body.Response, &payload); err != nil {
		return nil, fmt.Errorf("decode calendarific holidays: %w", err)
	}

	holidays := make([]Holiday, 0, len(payload.Holidays))
	for _, h := range payload.Holidays {
		date, err := parseISODate(h.Date.ISO)
		if err != nil {
			return nil, fmt.Errorf("holiday %q: %w", h.Name, err)
		}
		holidays = append(holidays, Holiday{
			Name:        h.Name,
			Description: h.Description,
			Date:        date,
			Types:       h.Type,
			PrimaryType: h.PrimaryType,
		})
	}
	return holidays, nil
}

// parseISODate keeps the calendar date of values like "2025-04-13" or "2025-03-20T10:01:25+07:00".
func parseISODate(iso string) (time.Time, error) {
	if len(iso) < len("2006-01-02") {
		return time.Time{}, fmt.Errorf("invalid date %q", iso)
	}
	return time.Parse("2006-01-02", iso[:len("2006-01-02")])
}
