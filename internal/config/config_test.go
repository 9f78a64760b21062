package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Tupsu-jy/star-retriever/internal/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("CLIENT_ID", "12345")
	t.Setenv("CLIENT_SECRET", "67890")
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("GITHUB_TIMEOUT", "5s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GitHub.ClientID != "12345" {
		t.Errorf("ClientID = %v, want 12345", cfg.GitHub.ClientID)
	}
	if cfg.GitHub.RedirectURI != "http://localhost:8000/api/callback" {
		t.Errorf("RedirectURI = %v, want default", cfg.GitHub.RedirectURI)
	}
	if cfg.GitHub.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.GitHub.Timeout)
	}
	if cfg.GitHub.TokenURL != config.GitHubTokenURL {
		t.Errorf("TokenURL = %v, want %v", cfg.GitHub.TokenURL, config.GitHubTokenURL)
	}
	if cfg.RateLimit.RequestsPerMinute != 30 {
		t.Errorf("RequestsPerMinute = %v, want 30", cfg.RateLimit.RequestsPerMinute)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() should be true for ENVIRONMENT=prod")
	}
	if cfg.GetServerAddress() != "0.0.0.0:8000" {
		t.Errorf("GetServerAddress() = %v, want 0.0.0.0:8000", cfg.GetServerAddress())
	}
}

func TestLoadMissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		secret string
	}{
		{"missing client id", "", "67890"},
		{"missing client secret", "12345", ""},
		{"missing both", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CLIENT_ID", tt.id)
			t.Setenv("CLIENT_SECRET", tt.secret)

			if _, err := config.Load(); err == nil {
				t.Error("Load() should fail without client credentials")
			}
		})
	}
}

func TestLoadReportsOffendingSetting(t *testing.T) {
	t.Setenv("CLIENT_ID", "12345")
	t.Setenv("CLIENT_SECRET", "67890")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")

	_, err := config.Load()
	if err == nil {
		t.Fatal("Load() should fail with a zero rate limit")
	}
	if !strings.Contains(err.Error(), "RATE_LIMIT_PER_MINUTE") {
		t.Errorf("Load() error = %q, want it to name RATE_LIMIT_PER_MINUTE", err)
	}
	if strings.Contains(err.Error(), "CLIENT_ID") {
		t.Errorf("Load() error = %q, should not blame the credentials", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			GitHub: config.GitHubConfig{
				ClientID:     "id",
				ClientSecret: "secret",
				RedirectURI:  "http://localhost:8000/api/callback",
				Timeout:      10 * time.Second,
			},
			RateLimit: config.RateLimitConfig{RequestsPerMinute: 30},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{"valid", func(c *config.Config) {}, false},
		{"relative redirect uri", func(c *config.Config) { c.GitHub.RedirectURI = "/api/callback" }, true},
		{"zero timeout", func(c *config.Config) { c.GitHub.Timeout = 0 }, true},
		{"zero rate", func(c *config.Config) { c.RateLimit.RequestsPerMinute = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
