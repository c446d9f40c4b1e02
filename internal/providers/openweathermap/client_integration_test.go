//go:build integration

package openweathermap

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"weather-app/internal/config"
)

func TestClient_CurrentWeather_Integration(t *testing.T) {
	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		t.Skip("API_KEY not set")
	}

	client := NewClient(config.ProviderConfig{APIKey: apiKey, Timeout: 10 * time.Second}, slog.Default())

	t.Logf("Making API call to OpenWeatherMap current weather API...")

	resp, err := client.CurrentWeather(context.Background(), "London")
	if err != nil {
		t.Fatalf("Failed to get current weather: %v", err)
	}

	// Pretty print the raw response
	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.Name == "" {
		t.Error("Name is empty")
	}
	if len(resp.Weather) == 0 {
		t.Fatal("Weather array is empty")
	}

	t.Logf("  %s: %.1f°C, %s", resp.Name, resp.Main.Temp, resp.Weather[0].Description)

	_, err = client.CurrentWeather(context.Background(), "Atlantisxyzzy")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || !apiErr.IsNotFound() {
		t.Errorf("expected not found APIError for unknown city, got %v", err)
	}

	t.Log("✓ API call successful, response structure valid")
}
