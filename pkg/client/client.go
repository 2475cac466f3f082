package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Barritosaurus/cpu-scheduler/internal/process"
	"github.com/Barritosaurus/cpu-scheduler/internal/requests"
	"github.com/Barritosaurus/cpu-scheduler/internal/responses"
	"github.com/Barritosaurus/cpu-scheduler/internal/schedulers"
)

// Client talks to a remote schedulerd.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// APIError is returned when the service answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scheduler service: %d %s", e.StatusCode, e.Message)
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: httpClient,
	}
}

// Schedule runs one policy remotely. A zero quantum lets the service use its
// configured default.
func (c *Client) Schedule(ctx context.Context, policy schedulers.Policy, processes []process.Process, quantum int64) (responses.ScheduleResponse, error) {
	var out responses.ScheduleResponse
	err := c.post(ctx, "/api/v1/schedule/"+policy.String(), requests.NewScheduleRequest(processes, quantum), &out)
	return out, err
}

// ScheduleAll runs the service's configured policy set.
func (c *Client) ScheduleAll(ctx context.Context, processes []process.Process, quantum int64) ([]responses.ScheduleResponse, error) {
	var out []responses.ScheduleResponse
	err := c.post(ctx, "/api/v1/schedule", requests.NewScheduleRequest(processes, quantum), &out)
	return out, err
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: encoding request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: calling scheduler service", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e responses.ErrorResponse
		if json.Unmarshal(raw, &e) != nil || e.Error == "" {
			e.Error = strings.TrimSpace(string(raw))
		}
		return &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decoding response", err)
	}
	return nil
}
