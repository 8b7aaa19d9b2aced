package config_test

import (
	"testing"
	"time"

	"repo-search/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "SERVER_HOST", "GITHUB_TOKEN", "GITHUB_API_URL", "GITHUB_USER_AGENT",
		"GITHUB_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := config.FromEnv()

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:5000", cfg.GetServerAddress())
	assert.Equal(t, "https://api.github.com", cfg.GitHub.BaseURL)
	assert.Equal(t, "repo-search", cfg.GitHub.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)

	assert.EqualError(t, cfg.Validate(), "GITHUB_TOKEN is required")
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("GITHUB_TIMEOUT", "3")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg := config.FromEnv()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "ghp_test", cfg.GitHub.Token)
	assert.Equal(t, 3*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Server: config.ServerConfig{Port: "5000", Host: "0.0.0.0"},
			GitHub: config.GitHubConfig{
				Token:     "t",
				BaseURL:   "https://api.github.com",
				UserAgent: "repo-search",
				Timeout:   time.Second,
			},
			Log: config.LogConfig{Level: "info", Format: "json"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"valid", func(c *config.Config) {}, false},
		{"missing token", func(c *config.Config) { c.GitHub.Token = "" }, true},
		{"empty user agent", func(c *config.Config) { c.GitHub.UserAgent = "" }, true},
		{"zero timeout", func(c *config.Config) { c.GitHub.Timeout = 0 }, true},
		{"relative base url", func(c *config.Config) { c.GitHub.BaseURL = "api.github.com" }, true},
		{"bad port", func(c *config.Config) { c.Server.Port = "http" }, true},
		{"port out of range", func(c *config.Config) { c.Server.Port = "70000" }, true},
		{"bad log level", func(c *config.Config) { c.Log.Level = "trace" }, true},
		{"bad log format", func(c *config.Config) { c.Log.Format = "xml" }, true},
		{"console format", func(c *config.Config) { c.Log.Format = "console" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
