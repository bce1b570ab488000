// Package weather looks up current conditions for a city via
// OpenWeatherMap and formats them as display text for the chat.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const requestTimeout = 10 * time.Second

// Client fetches current weather conditions.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a weather client. An empty apiKey disables the
// feature: lookups return an explanatory message instead of calling out.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type currentResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Lookup returns formatted weather text for a city. Failures come back as
// user-facing text, never as an error: the chat pipeline displays whatever
// this returns as the assistant message.
func (c *Client) Lookup(ctx context.Context, city string) string {
	city = strings.TrimSpace(city)
	if city == "" {
		return "Please tell me which city you want the weather for."
	}
	if !c.Enabled() {
		return "⚠️ Weather lookups are not configured. Set WEATHER_API_KEY to enable them."
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return fmt.Sprintf("Sorry, I couldn't check the weather for %s right now.", city)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("weather request failed", "city", city, "error", err)
		return fmt.Sprintf("Sorry, I couldn't check the weather for %s right now.", city)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Debug("failed to close weather response body", "error", closeErr)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Sprintf("I couldn't find a city called %q.", city)
	}
	if resp.StatusCode != http.StatusOK {
		slog.Warn("weather provider error", "city", city, "status", resp.StatusCode)
		return fmt.Sprintf("Sorry, I couldn't check the weather for %s right now.", city)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("Sorry, I couldn't check the weather for %s right now.", city)
	}

	var cur currentResponse
	if err := json.Unmarshal(raw, &cur); err != nil {
		return fmt.Sprintf("Sorry, I couldn't check the weather for %s right now.", city)
	}

	desc := "unknown conditions"
	if len(cur.Weather) > 0 {
		desc = cur.Weather[0].Description
	}
	name := cur.Name
	if name == "" {
		name = city
	}

	return fmt.Sprintf(
		"🌤️ **Weather in %s**\n\n- Conditions: %s\n- Temperature: %.1f°C (feels like %.1f°C)\n- Humidity: %d%%\n- Wind: %.1f m/s",
		name, desc, cur.Main.Temp, cur.Main.FeelsLike, cur.Main.Humidity, cur.Wind.Speed,
	)
}
