// Package harvest is a thin authenticated client for the Harvest REST v2 API.
package harvest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production Harvest API endpoint.
const DefaultBaseURL = "https://api.harvestapp.com/v2"

const userAgent = "harvest-mcp-server (github.com/harvestlab/harvest-mcp-server)"

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 1 << 20

// APIError is a non-2xx response from the Harvest API.
type APIError struct {
	// StatusCode is the HTTP status.
	StatusCode int
	// Message is Harvest's error message, or a generic status line.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("harvest api error (status %d): %s", e.StatusCode, e.Message)
}

// Client issues authenticated requests against one Harvest account.
type Client struct {
	// BaseURL is the API root without trailing slash.
	BaseURL string
	// Credentials authenticates every request.
	Credentials Credentials
	// Limiter throttles outbound calls; shared across invocations.
	Limiter *rate.Limiter

	httpClient *http.Client
}

// NewClient builds a client for the given account. An empty baseURL selects
// the production endpoint; a nil limiter disables throttling.
func NewClient(baseURL string, creds Credentials, limiter *rate.Limiter) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Credentials: creds,
		Limiter:     limiter,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// NewLimiter returns a limiter matching Harvest's documented budget of
// 100 requests per 15 seconds.
func NewLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(150*time.Millisecond), 10)
}

// Get performs an authenticated GET and returns the raw JSON body.
func (c *Client) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	target := c.BaseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	return c.do(ctx, http.MethodGet, target, nil)
}

// Post performs an authenticated POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return c.do(ctx, http.MethodPost, c.BaseURL+path, payload)
}

// Patch performs an authenticated bodyless PATCH.
func (c *Client) Patch(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, c.BaseURL+path, nil)
}

// Delete performs an authenticated DELETE, discarding the response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, c.BaseURL+path, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, target string, body []byte) ([]byte, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	request, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+c.Credentials.AccessToken)
	request.Header.Set("Harvest-Account-Id", c.Credentials.AccountID)
	request.Header.Set("User-Agent", userAgent)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("harvest request failed: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data, resp.Status),
		}
	}
	return data, nil
}

// errorMessage extracts Harvest's structured error text when present.
func errorMessage(data []byte, fallback string) string {
	var payload struct {
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(payload.ErrorDescription); msg != "" {
			return msg
		}
	}
	if trimmed := strings.TrimSpace(string(data)); trimmed != "" {
		return trimmed
	}
	return fallback
}

// Me fetches the authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	data, err := c.Get(ctx, "/users/me", nil)
	if err != nil {
		return nil, err
	}
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

// MyProjectAssignments fetches the current user's project assignments.
func (c *Client) MyProjectAssignments(ctx context.Context) ([]ProjectAssignment, error) {
	data, err := c.Get(ctx, "/users/me/project_assignments", nil)
	if err != nil {
		return nil, err
	}
	var page ProjectAssignmentsPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("decode project assignments: %w", err)
	}
	return page.ProjectAssignments, nil
}

// TimeEntriesQuery filters a time entries listing.
type TimeEntriesQuery struct {
	// From bounds the range start (canonical date), inclusive.
	From string
	// To bounds the range end (canonical date), inclusive.
	To string
	// ProjectID filters by project when non-zero.
	ProjectID int64
	// UserID filters by user when non-zero.
	UserID int64
	// RunningOnly restricts to running timers.
	RunningOnly bool
}

// TimeEntries fetches entries matching the query.
func (c *Client) TimeEntries(ctx context.Context, query TimeEntriesQuery) (*TimeEntriesPage, error) {
	params := url.Values{}
	if query.From != "" {
		params.Set("from", query.From)
	}
	if query.To != "" {
		params.Set("to", query.To)
	}
	if query.ProjectID != 0 {
		params.Set("project_id", strconv.FormatInt(query.ProjectID, 10))
	}
	if query.UserID != 0 {
		params.Set("user_id", strconv.FormatInt(query.UserID, 10))
	}
	if query.RunningOnly {
		params.Set("is_running", "true")
	}

	data, err := c.Get(ctx, "/time_entries", params)
	if err != nil {
		return nil, err
	}
	var page TimeEntriesPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("decode time entries: %w", err)
	}
	return &page, nil
}

// CreateEntry creates a time entry; a nil Hours starts a running timer.
func (c *Client) CreateEntry(ctx context.Context, entry CreateTimeEntry) (*TimeEntry, error) {
	data, err := c.Post(ctx, "/time_entries", entry)
	if err != nil {
		return nil, err
	}
	return decodeEntry(data)
}

// DeleteEntry removes a time entry by id.
func (c *Client) DeleteEntry(ctx context.Context, id int64) error {
	return c.Delete(ctx, "/time_entries/"+strconv.FormatInt(id, 10))
}

// StopEntry finalizes a running timer's elapsed hours.
func (c *Client) StopEntry(ctx context.Context, id int64) (*TimeEntry, error) {
	data, err := c.Patch(ctx, "/time_entries/"+strconv.FormatInt(id, 10)+"/stop")
	if err != nil {
		return nil, err
	}
	return decodeEntry(data)
}

// RestartEntry resumes tracking on a stopped entry.
func (c *Client) RestartEntry(ctx context.Context, id int64) (*TimeEntry, error) {
	data, err := c.Patch(ctx, "/time_entries/"+strconv.FormatInt(id, 10)+"/restart")
	if err != nil {
		return nil, err
	}
	return decodeEntry(data)
}

func decodeEntry(data []byte) (*TimeEntry, error) {
	var entry TimeEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decode time entry: %w", err)
	}
	return &entry, nil
}
