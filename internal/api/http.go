package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP client timeout.
const DefaultTimeout = 30 * time.Second

// HTTPSource fetches collections from a backend that serves the same
// endpoints as JSON arrays.
type HTTPSource struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

// NewHTTPSource creates a source for baseURL. The token, if any, is sent
// as a bearer token.
func NewHTTPSource(baseURL, accessToken string) *HTTPSource {
	return &HTTPSource{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
	}
}

// SetHTTPClient allows overriding the default HTTP client (useful for testing).
func (s *HTTPSource) SetHTTPClient(httpClient *http.Client) {
	s.httpClient = httpClient
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context, endpoint string) (json.RawMessage, error) {
	return s.do(ctx, http.MethodGet, endpoint, nil)
}

// Post implements Source.
func (s *HTTPSource) Post(ctx context.Context, endpoint string, body []byte) (json.RawMessage, error) {
	return s.do(ctx, http.MethodPost, endpoint, body)
}

func (s *HTTPSource) do(ctx context.Context, method, endpoint string, payload []byte) (json.RawMessage, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if s.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.accessToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, notFound(endpoint)
	}
	if resp.StatusCode >= 400 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	if method != http.MethodGet && len(bytes.TrimSpace(body)) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(body) {
		return nil, &DecodeError{Endpoint: endpoint, Index: -1, Err: fmt.Errorf("response is not JSON")}
	}
	return json.RawMessage(body), nil
}
