package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/abdidvp/transformspec/internal/domain"
)

const (
	// configRel is the config file location under the XDG config home.
	configRel = "transformspec/config.yaml"
	envPrefix = "TRANSFORMSPEC"
)

// Loader implements domain.ConfigLoader with viper. Values come from, in
// increasing priority: defaults, the config file, TRANSFORMSPEC_* variables.
type Loader struct {
	path string
}

// New creates a Loader. An empty path selects the XDG config file.
func New(path string) *Loader { return &Loader{path: path} }

// Load reads the configuration. A missing config file is not an error.
func (l *Loader) Load() (domain.AppConfig, error) {
	path := l.path
	if path == "" {
		p, err := xdg.ConfigFile(configRel)
		if err != nil {
			return domain.AppConfig{}, fmt.Errorf("locating config file: %w", err)
		}
		path = p
	}

	v := viper.New()
	setDefaults(v, domain.DefaultConfig())
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return domain.AppConfig{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	var cfg domain.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.AppConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.AppConfig{}, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the file the loader reads, resolving the XDG default.
func (l *Loader) Path() (string, error) {
	if l.path != "" {
		return l.path, nil
	}
	return xdg.ConfigFile(configRel)
}

func setDefaults(v *viper.Viper, d domain.AppConfig) {
	v.SetDefault("backend_url", d.BackendURL)
	v.SetDefault("listen_addr", d.ListenAddr)
	v.SetDefault("workspace_dir", d.WorkspaceDir)
	v.SetDefault("kiro_binary", d.KiroBinary)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
}
