package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to a project's PostgREST endpoint (/rest/v1) with the anon
// key. It only knows how to do the small reads this service needs.
type Client struct {
	BaseURL    string
	AnonKey    string
	HTTPClient *http.Client
}

func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		AnonKey: anonKey,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Error is the json body PostgREST sends back on a non-2xx response.
type Error struct {
	StatusCode int     `json:"-"`
	Code       string  `json:"code"`
	Message    string  `json:"message"`
	Details    *string `json:"details"`
	Hint       *string `json:"hint"`
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("supabase returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("supabase returned %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Select runs GET /rest/v1/{table}?select={columns}&limit={limit}.
func (c *Client) Select(ctx context.Context, table string, columns string, limit int) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("select", columns)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", c.BaseURL, url.PathEscape(table), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.AnonKey)
	req.Header.Set("Authorization", "Bearer "+c.AnonKey)
	req.Header.Set("Accept", "application/json")

	response, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		errJson := Error{}
		if err := json.Unmarshal(responseBytes, &errJson); err != nil || errJson.Message == "" {
			errJson.Message = strings.TrimSpace(string(responseBytes))
			if errJson.Message == "" {
				errJson.Message = http.StatusText(response.StatusCode)
			}
		}
		errJson.StatusCode = response.StatusCode
		return nil, &errJson
	}

	rows := []map[string]any{}
	if err := json.Unmarshal(responseBytes, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode %s rows: %w", table, err)
	}

	return rows, nil
}
