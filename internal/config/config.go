package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config captures workspace-level settings for guidepost.
type Config struct {
	Version   int            `yaml:"version"`
	Catalog   CatalogConfig  `yaml:"catalog"`
	Install   InstallConfig  `yaml:"install"`
	Registry  RegistryConfig `yaml:"registry"`
	LogsDir   string         `yaml:"logs_dir,omitempty"`
	OutputDir string         `yaml:"frameworks_dir,omitempty"`
}

// CatalogConfig locates the framework catalog.
type CatalogConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// InstallConfig holds defaults for install and update behaviour.
type InstallConfig struct {
	// BackupOnUpdate controls whether plain (non-customized) updates also
	// take a backup before overwriting.
	BackupOnUpdate *bool `yaml:"backup_on_update,omitempty"`
}

// RegistryConfig tunes the persisted registry cache.
type RegistryConfig struct {
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Version: 1,
		Install: InstallConfig{
			BackupOnUpdate: boolPtr(false),
		},
		Registry: RegistryConfig{
			CacheTTLSeconds: 5,
		},
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise returns
// the default configuration.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults ensures fields fall back to sensible defaults when the YAML
// omits them.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.Registry.CacheTTLSeconds == 0 {
		c.Registry.CacheTTLSeconds = defaults.Registry.CacheTTLSeconds
	}
	if c.Install.BackupOnUpdate == nil {
		c.Install.BackupOnUpdate = boolPtr(false)
	}
}

// CacheTTL returns the registry cache validity window as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.Registry.CacheTTLSeconds) * time.Second
}

// BackupOnUpdate reports the effective backup-on-update flag.
func (c Config) BackupOnUpdate() bool {
	if c.Install.BackupOnUpdate == nil {
		return false
	}
	return *c.Install.BackupOnUpdate
}

// Marshal returns the YAML encoding of the configuration.
func (c Config) Marshal() ([]byte, error) {
	buf, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf, nil
}

func boolPtr(v bool) *bool {
	return &v
}
