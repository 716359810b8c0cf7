// Package funtoolbox provides the fixed tool set served by the funtools
// host: weather, book search, jokes, dog pictures, and trivia. Each tool is
// exactly one outbound HTTPS GET with a short timeout — no retries, no
// caching, no pagination. Results are reshaped into a small ok-flagged JSON
// payload.
package funtoolbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/germanamz/weekender/pkg/tools/toolbox"
)

const requestTimeout = 20 * time.Second

// FunTools owns the HTTP client and endpoint URLs for the tool set.
// Endpoint fields exist so tests can point tools at local servers.
type FunTools struct {
	client     *http.Client
	weatherURL string
	booksURL   string
	jokeURL    string
	dogURL     string
	triviaURL  string
}

// New creates a FunTools backed by the public endpoints.
func New() *FunTools {
	return &FunTools{
		client:     &http.Client{Timeout: requestTimeout},
		weatherURL: defaultWeatherURL,
		booksURL:   defaultBooksURL,
		jokeURL:    defaultJokeURL,
		dogURL:     defaultDogURL,
		triviaURL:  defaultTriviaURL,
	}
}

// Tools returns the fixed tool set for registration with an MCP server.
func (f *FunTools) Tools() []toolbox.Tool {
	return []toolbox.Tool{
		f.weatherTool(),
		f.booksTool(),
		f.jokeTool(),
		f.dogTool(),
		f.triviaTool(),
	}
}

// getJSON performs one GET against rawURL with the given query parameters,
// fails on any non-2xx status, and decodes the JSON body into dest.
func (f *FunTools) getJSON(ctx context.Context, rawURL string, params url.Values, dest any) error {
	u := rawURL
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("funtoolbox: build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("funtoolbox: do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("funtoolbox: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("funtoolbox: decode response: %w", err)
	}

	return nil
}

// marshalResult renders a tool result struct as the JSON text payload the
// MCP layer carries back to the agent.
func marshalResult(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("funtoolbox: marshal result: %w", err)
	}
	return string(data), nil
}

// dedupe removes duplicate strings preserving first-seen order.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
