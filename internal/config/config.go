package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	// EnvironmentDev enables debug-only behaviour such as API docs and verbose errors.
	EnvironmentDev = "dev"
	// EnvironmentProd hides diagnostics from API clients.
	EnvironmentProd = "prod"
)

// GitHub endpoints. They are fixed and intentionally not bound to environment variables.
const (
	GitHubAuthorizeURL = "https://github.com/login/oauth/authorize"
	GitHubTokenURL     = "https://github.com/login/oauth/access_token"
	GitHubAPIBaseURL   = "https://api.github.com/"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	Server    ServerConfig
	GitHub    GitHubConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string        `env:"SERVER_PORT" envDefault:"8000"`
	Host         string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
}

// GitHubConfig holds the OAuth application credentials and upstream settings
type GitHubConfig struct {
	ClientID     string        `env:"CLIENT_ID,required,notEmpty"`
	ClientSecret string        `env:"CLIENT_SECRET,required,notEmpty"`
	RedirectURI  string        `env:"REDIRECT_URI" envDefault:"http://localhost:8000/api/callback"`
	Timeout      time.Duration `env:"GITHUB_TIMEOUT" envDefault:"10s"`

	AuthorizeURL string
	TokenURL     string
	APIBaseURL   string
}

// RateLimitConfig holds the per-client request budget
type RateLimitConfig struct {
	RequestsPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// .env file is optional
	_ = godotenv.Load()

	config := &Config{
		GitHub: GitHubConfig{
			AuthorizeURL: GitHubAuthorizeURL,
			TokenURL:     GitHubTokenURL,
			APIBaseURL:   GitHubAPIBaseURL,
		},
	}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.GitHub.ClientID == "" {
		return fmt.Errorf("CLIENT_ID is required")
	}
	if c.GitHub.ClientSecret == "" {
		return fmt.Errorf("CLIENT_SECRET is required")
	}
	u, err := url.Parse(c.GitHub.RedirectURI)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("REDIRECT_URI must be an absolute URL, got %q", c.GitHub.RedirectURI)
	}
	if c.GitHub.Timeout <= 0 {
		return fmt.Errorf("GITHUB_TIMEOUT must be positive")
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

// IsProduction reports whether diagnostics must be hidden from clients
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProd
}

// GetServerAddress returns the server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
