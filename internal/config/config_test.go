package config

import (
	"errors"
	"testing"
	"time"
)

// clearEnv blanks every variable Load consults so the host environment cannot leak into a test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"API_KEY",
		"OPENWEATHER_API_KEY",
		"PORT",
		"WEATHER_APP_PROVIDER_APIKEY",
		"WEATHER_APP_SERVER_PORT",
		"WEATHER_APP_PROVIDER_TIMEOUT",
		"WEATHER_APP_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantErr  error
		validate func(*testing.T, *Config)
	}{
		{
			name:    "missing API key",
			env:     map[string]string{},
			wantErr: ErrMissingAPIKey,
		},
		{
			name: "defaults with API_KEY",
			env:  map[string]string{"API_KEY": "secret"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Provider.APIKey != "secret" {
					t.Errorf("Provider.APIKey = %q, want %q", cfg.Provider.APIKey, "secret")
				}
				if cfg.Server.Port != 5000 {
					t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
				}
				if cfg.Provider.Timeout != 10*time.Second {
					t.Errorf("Provider.Timeout = %v, want 10s", cfg.Provider.Timeout)
				}
				if cfg.Provider.BaseURL != "https://api.openweathermap.org/data/2.5/weather" {
					t.Errorf("Provider.BaseURL = %q", cfg.Provider.BaseURL)
				}
			},
		},
		{
			name: "OPENWEATHER_API_KEY fallback",
			env:  map[string]string{"OPENWEATHER_API_KEY": "other"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Provider.APIKey != "other" {
					t.Errorf("Provider.APIKey = %q, want %q", cfg.Provider.APIKey, "other")
				}
			},
		},
		{
			name: "PORT override",
			env:  map[string]string{"API_KEY": "secret", "PORT": "8081"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Server.Port != 8081 {
					t.Errorf("Server.Port = %d, want 8081", cfg.Server.Port)
				}
				if cfg.GetServerAddr() != ":8081" {
					t.Errorf("GetServerAddr() = %q, want %q", cfg.GetServerAddr(), ":8081")
				}
			},
		},
		{
			name: "prefixed timeout override",
			env:  map[string]string{"API_KEY": "secret", "WEATHER_APP_PROVIDER_TIMEOUT": "3s"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Provider.Timeout != 3*time.Second {
					t.Errorf("Provider.Timeout = %v, want 3s", cfg.Provider.Timeout)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error = %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Server:   ServerConfig{Port: 5000},
		Provider: ProviderConfig{APIKey: "key", Timeout: time.Second},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "blank key", mutate: func(c *Config) { c.Provider.APIKey = "   " }, wantErr: true},
		{name: "zero port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Provider.Timeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
