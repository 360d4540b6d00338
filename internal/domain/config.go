package domain

import (
	"fmt"
	"strings"
)

// AppConfig is the tool's runtime configuration.
type AppConfig struct {
	BackendURL   string `mapstructure:"backend_url"   json:"backend_url"`
	ListenAddr   string `mapstructure:"listen_addr"   json:"listen_addr"`
	WorkspaceDir string `mapstructure:"workspace_dir" json:"workspace_dir"`
	KiroBinary   string `mapstructure:"kiro_binary"   json:"kiro_binary"`
	LogLevel     string `mapstructure:"log_level"     json:"log_level"`
	LogFormat    string `mapstructure:"log_format"    json:"log_format"`
}

// DefaultConfig matches the original backend's port and folder layout.
func DefaultConfig() AppConfig {
	return AppConfig{
		BackendURL:   "http://localhost:5007",
		ListenAddr:   ":5007",
		WorkspaceDir: ".kiro",
		KiroBinary:   "kiro-cli",
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

var validLogFormats = []string{"text", "json"}

// Validate checks the config for invalid values and returns a descriptive error.
func (c AppConfig) Validate() error {
	if strings.TrimSpace(c.WorkspaceDir) == "" {
		return fmt.Errorf("workspace_dir must not be empty")
	}
	if strings.ContainsAny(c.WorkspaceDir, `/\`) {
		return fmt.Errorf("workspace_dir %q must be a single directory name", c.WorkspaceDir)
	}
	if c.KiroBinary == "" {
		return fmt.Errorf("kiro_binary must not be empty")
	}
	if c.LogFormat != "" {
		valid := false
		for _, f := range validLogFormats {
			if c.LogFormat == f {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown log_format %q (valid: %s)", c.LogFormat, strings.Join(validLogFormats, ", "))
		}
	}
	return nil
}
