package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/transformspec/internal/domain"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := domain.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:5007", cfg.BackendURL)
	assert.Equal(t, ":5007", cfg.ListenAddr)
	assert.Equal(t, ".kiro", cfg.WorkspaceDir)
	assert.Equal(t, "kiro-cli", cfg.KiroBinary)
}

func TestAppConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.AppConfig)
		wantErr string
	}{
		{"empty workspace", func(c *domain.AppConfig) { c.WorkspaceDir = " " }, "workspace_dir must not be empty"},
		{"nested workspace", func(c *domain.AppConfig) { c.WorkspaceDir = "a/b" }, "single directory name"},
		{"no binary", func(c *domain.AppConfig) { c.KiroBinary = "" }, "kiro_binary"},
		{"unknown log format", func(c *domain.AppConfig) { c.LogFormat = "xml" }, `unknown log_format "xml"`},
		{"json log format", func(c *domain.AppConfig) { c.LogFormat = "json" }, ""},
		{"empty log format", func(c *domain.AppConfig) { c.LogFormat = "" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
