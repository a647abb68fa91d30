/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"codeberg.org/orien/cfnsync/internal/config"
	"gopkg.in/yaml.v3"
)

// Provider implements config.ConfigProvider by reading from a YAML file
type Provider struct {
	filename  string
	optional  bool
	rawConfig *Config
}

// NewProvider creates a provider for a file that must exist
func NewProvider(filename string) *Provider {
	return &Provider{filename: filename}
}

// NewOptionalProvider creates a provider that falls back to defaults when the file is absent
func NewOptionalProvider(filename string) *Provider {
	return &Provider{filename: filename, optional: true}
}

// LoadConfig loads the file and resolves it over config.Default()
func (fp *Provider) LoadConfig(ctx context.Context) (*config.Config, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	cfg := config.Default()
	raw := fp.rawConfig

	cfg.Region = raw.Region
	cfg.Profile = raw.Profile
	cfg.UseChangeSet = raw.UseChangeSet
	cfg.Capabilities = slices.Clone(raw.Capabilities)
	if raw.Tags != nil {
		cfg.Tags = copyStringMap(raw.Tags)
	}
	if raw.WaitDelay != nil {
		cfg.WaitDelay = time.Duration(*raw.WaitDelay)
	}
	if raw.ChangeSetDelay != nil {
		cfg.ChangeSetDelay = time.Duration(*raw.ChangeSetDelay)
	}
	if raw.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(raw.LogLevel)
	}
	if raw.Errors != nil {
		cfg.Errors = config.ErrorPatterns{
			NotFound:  slices.Clone(raw.Errors.NotFound),
			NoUpdates: slices.Clone(raw.Errors.NoUpdates),
			NoChanges: slices.Clone(raw.Errors.NoChanges),
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", fp.filename, err)
	}

	return cfg, nil
}

// ensureLoaded loads the raw configuration from file if not already loaded
func (fp *Provider) ensureLoaded() error {
	if fp.rawConfig != nil {
		return nil
	}

	data, err := os.ReadFile(fp.filename)
	if err != nil {
		if fp.optional && errors.Is(err, fs.ErrNotExist) {
			fp.rawConfig = &Config{}
			return nil
		}
		return fmt.Errorf("failed to read config file '%s': %w", fp.filename, err)
	}

	var rawConfig Config
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return fmt.Errorf("failed to parse YAML config file '%s': %w", fp.filename, err)
	}

	fp.rawConfig = &rawConfig
	return nil
}

func validate(cfg *config.Config) error {
	if cfg.WaitDelay <= 0 {
		return fmt.Errorf("wait_delay must be positive, got %s", cfg.WaitDelay)
	}
	if cfg.ChangeSetDelay <= 0 {
		return fmt.Errorf("change_set_delay must be positive, got %s", cfg.ChangeSetDelay)
	}
	if !config.ValidLogLevel(cfg.LogLevel) {
		return fmt.Errorf("unknown log_level '%s'", cfg.LogLevel)
	}
	return nil
}

func copyStringMap(source map[string]string) map[string]string {
	copied := make(map[string]string, len(source))
	for k, v := range source {
		copied[k] = v
	}
	return copied
}
