// Package opentdb is a minimal client for the Open Trivia DB HTTP API:
// session tokens plus batched question fetches.
package opentdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the public Open Trivia DB endpoint.
	DefaultBaseURL = "https://opentdb.com"
	// DefaultBatchSize is the number of questions requested per fetch,
	// the API's maximum.
	DefaultBatchSize = 50
)

// Client talks to the Open Trivia DB API over HTTP.
type Client struct {
	baseURL    string
	batchSize  int
	httpClient *http.Client
}

// New returns a Client for baseURL requesting batchSize questions per
// fetch. Zero values fall back to the public endpoint and the maximum
// batch size.
func New(baseURL string, batchSize int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Client{
		baseURL:    baseURL,
		batchSize:  batchSize,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type tokenResponse struct {
	ResponseCode int    `json:"response_code"`
	Token        string `json:"token"`
}

type batchResponse struct {
	ResponseCode int        `json:"response_code"`
	Results      []Question `json:"results"`
}

// RequestToken asks the API for a fresh session token. The token scopes
// deduplication server-side, so repeated fetches against it don't serve
// the same question twice. Failures come back as *AuthError.
func (c *Client) RequestToken(ctx context.Context) (string, error) {
	var payload tokenResponse
	if _, err := c.getJSON(ctx, "/api_token.php?command=request", &payload); err != nil {
		return "", &AuthError{Err: err}
	}
	if payload.Token == "" {
		return "", &AuthError{Err: errors.New("response carried no token")}
	}
	return payload.Token, nil
}

// FetchBatch requests one batch of questions for token and unescapes
// every record. A non-success response_code comes back as *APIError
// carrying the documented message for that code.
func (c *Client) FetchBatch(ctx context.Context, token string) ([]Question, error) {
	path := fmt.Sprintf("/api.php?amount=%d&token=%s", c.batchSize, url.QueryEscape(token))

	var payload batchResponse
	status, err := c.getJSON(ctx, path, &payload)
	if err != nil {
		return nil, err
	}
	if payload.ResponseCode != CodeSuccess {
		return nil, newAPIError(payload.ResponseCode, status)
	}

	questions := make([]Question, len(payload.Results))
	for i, q := range payload.Results {
		questions[i] = q.unescaped()
	}
	return questions, nil
}

// getJSON performs a GET against path and decodes the body into out,
// returning the HTTP status code when one was received.
func (c *Client) getJSON(ctx context.Context, path string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("opentdb get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("opentdb get: unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("opentdb decode: %w", err)
	}
	return resp.StatusCode, nil
}
