package openweathermap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"weather-app/internal/config"
)

// API Docs: https://openweathermap.org/current
// Sample request: https://api.openweathermap.org/data/2.5/weather?q=London&appid={API key}&units=metric
const (
	baseURL        = "https://api.openweathermap.org/data/2.5/weather"
	units          = "metric"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

// ErrMissingCode is returned when a successful response carries no cod field
var ErrMissingCode = errors.New("response is missing cod")

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
	logger     *slog.Logger
}

func NewClient(cfg config.ProviderConfig, logger *slog.Logger) *Client {
	c := &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		timeout: cfg.Timeout,
		logger:  logger.With("component", "openweathermap-client"),
	}
	if c.baseURL == "" {
		c.baseURL = baseURL
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	c.httpClient = &http.Client{Timeout: c.timeout}
	return c
}

// CurrentWeather fetches current conditions for a city name.
// Provider-level failures are reported as *APIError, transport failures as *NetworkError.
func (c *Client) CurrentWeather(ctx context.Context, city string) (*CurrentWeatherResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", units)
	u.RawQuery = q.Encode()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// The URL is never logged: it carries the API key
	c.logger.Debug("fetching current weather", "city", city, "host", u.Host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = stripURL(err)
		c.logger.Error("failed to fetch current weather", "city", city, "error", err)
		return nil, &NetworkError{Err: err}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.logger.Error("failed to read response body", "city", city, "error", err)
		return nil, &NetworkError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	success := resp.StatusCode >= 200 && resp.StatusCode < 300

	// The body code decides the outcome whenever the provider sent one
	var status errorBody
	decodeErr := json.Unmarshal(body, &status)
	if decodeErr != nil || status.Cod == nil {
		if !success {
			c.logger.Error("weather API returned error",
				"status_code", resp.StatusCode,
				"response_body", truncate(string(body), 256),
			)
			return nil, &NetworkError{Err: &StatusError{StatusCode: resp.StatusCode, Body: string(body)}}
		}
		if decodeErr != nil {
			c.logger.Error("failed to decode weather response", "error", decodeErr)
			return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
		}
		return nil, ErrMissingCode
	}

	if *status.Cod != CodeOK {
		apiErr := &APIError{Code: *status.Cod, Message: status.message()}
		c.logger.Warn("weather API reported failure",
			"city", city,
			"status_code", resp.StatusCode,
			"cod", int(apiErr.Code),
			"message", apiErr.Message,
		)
		return nil, apiErr
	}

	var apiResp CurrentWeatherResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		c.logger.Error("failed to decode weather response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched current weather",
		"city", city,
		"name", apiResp.Name,
		"conditions", len(apiResp.Weather),
	)

	return &apiResp, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
