package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration for the Jira MCP server.
type Config struct {
	// Jira connection settings
	JiraBaseURL  string
	JiraEmail    string
	JiraAPIToken string

	// Optional: serve MCP over HTTP on this address instead of stdio
	HTTPAddr string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		JiraBaseURL:  strings.TrimSpace(os.Getenv("JIRA_BASE_URL")),
		JiraEmail:    strings.TrimSpace(os.Getenv("JIRA_EMAIL")),
		JiraAPIToken: strings.TrimSpace(os.Getenv("JIRA_API_TOKEN")),
		HTTPAddr:     strings.TrimSpace(os.Getenv("MCP_HTTP_ADDR")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present.
func (c *Config) validate() error {
	if c.JiraBaseURL == "" {
		return fmt.Errorf("JIRA_BASE_URL is required")
	}
	if c.JiraEmail == "" {
		return fmt.Errorf("JIRA_EMAIL is required")
	}
	if c.JiraAPIToken == "" {
		return fmt.Errorf("JIRA_API_TOKEN is required")
	}
	return nil
}
