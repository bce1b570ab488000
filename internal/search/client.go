// Package search runs web searches via the Serper API and formats the top
// results as a Markdown list for the chat.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const requestTimeout = 10 * time.Second

// Client runs web searches.
type Client struct {
	baseURL    string
	apiKey     string
	maxResults int
	httpClient *http.Client
}

// NewClient creates a search client. An empty apiKey disables the feature.
func NewClient(baseURL, apiKey string, maxResults int) *Client {
	if maxResults <= 0 {
		maxResults = 5
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		maxResults: maxResults,
		httpClient: &http.Client{},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type searchRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

type searchResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

// Lookup returns the top results for a query as a Markdown bullet list
// with bolded linked titles and italic snippets. Failures come back as
// user-facing text, never as an error.
func (c *Client) Lookup(ctx context.Context, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return "Please tell me what you want me to search for."
	}
	if !c.Enabled() {
		return "⚠️ Web search is not configured. Set SEARCH_API_KEY to enable it."
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	body, err := json.Marshal(searchRequest{Q: query, Num: c.maxResults})
	if err != nil {
		return fmt.Sprintf("Sorry, the search for %q failed.", query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return fmt.Sprintf("Sorry, the search for %q failed.", query)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("search request failed", "query", query, "error", err)
		return fmt.Sprintf("Sorry, the search for %q failed.", query)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Debug("failed to close search response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("search provider error", "query", query, "status", resp.StatusCode)
		return fmt.Sprintf("Sorry, the search for %q failed.", query)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("Sorry, the search for %q failed.", query)
	}

	var sr searchResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return fmt.Sprintf("Sorry, the search for %q failed.", query)
	}
	if len(sr.Organic) == 0 {
		return fmt.Sprintf("I couldn't find any results for %q.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 **Top results for %q:**\n", query)
	count := 0
	for _, r := range sr.Organic {
		if count >= c.maxResults {
			break
		}
		fmt.Fprintf(&b, "\n- **[%s](%s)**", r.Title, r.Link)
		if r.Snippet != "" {
			fmt.Fprintf(&b, "\n  *%s*", r.Snippet)
		}
		count++
	}
	return b.String()
}
