package config

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
		check   func(*testing.T, *Config)
	}{
		{
			name: "all required fields present",
			env: map[string]string{
				"JIRA_BASE_URL":  "https://example.atlassian.net",
				"JIRA_EMAIL":     "user@example.com",
				"JIRA_API_TOKEN": "api-token",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.JiraBaseURL != "https://example.atlassian.net" {
					t.Errorf("JiraBaseURL = %s, want https://example.atlassian.net", cfg.JiraBaseURL)
				}
				if cfg.JiraEmail != "user@example.com" {
					t.Errorf("JiraEmail = %s, want user@example.com", cfg.JiraEmail)
				}
				if cfg.JiraAPIToken != "api-token" {
					t.Errorf("JiraAPIToken = %s, want api-token", cfg.JiraAPIToken)
				}
				if cfg.HTTPAddr != "" {
					t.Errorf("HTTPAddr = %s, want empty", cfg.HTTPAddr)
				}
			},
		},
		{
			name: "optional http address",
			env: map[string]string{
				"JIRA_BASE_URL":  "https://example.atlassian.net",
				"JIRA_EMAIL":     "user@example.com",
				"JIRA_API_TOKEN": "api-token",
				"MCP_HTTP_ADDR":  ":8080",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.HTTPAddr != ":8080" {
					t.Errorf("HTTPAddr = %s, want :8080", cfg.HTTPAddr)
				}
			},
		},
		{
			name: "missing base URL",
			env: map[string]string{
				"JIRA_EMAIL":     "user@example.com",
				"JIRA_API_TOKEN": "api-token",
			},
			wantErr: "JIRA_BASE_URL",
		},
		{
			name: "missing email",
			env: map[string]string{
				"JIRA_BASE_URL":  "https://example.atlassian.net",
				"JIRA_API_TOKEN": "api-token",
			},
			wantErr: "JIRA_EMAIL",
		},
		{
			name: "missing API token",
			env: map[string]string{
				"JIRA_BASE_URL": "https://example.atlassian.net",
				"JIRA_EMAIL":    "user@example.com",
			},
			wantErr: "JIRA_API_TOKEN",
		},
		{
			name: "whitespace-only values rejected",
			env: map[string]string{
				"JIRA_BASE_URL":  "https://example.atlassian.net",
				"JIRA_EMAIL":     "user@example.com",
				"JIRA_API_TOKEN": "   ",
			},
			wantErr: "JIRA_API_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"JIRA_BASE_URL", "JIRA_EMAIL", "JIRA_API_TOKEN", "MCP_HTTP_ADDR"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %v, want mention of %s", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}
