/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package file contains the raw YAML structure of the cfn-sync configuration file.
package file

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the raw YAML configuration file structure
type Config struct {
	Region         string            `yaml:"region"`
	Profile        string            `yaml:"profile"`
	WaitDelay      *Duration         `yaml:"wait_delay"`
	ChangeSetDelay *Duration         `yaml:"change_set_delay"`
	Capabilities   []string          `yaml:"capabilities"`
	Tags           map[string]string `yaml:"tags"`
	UseChangeSet   bool              `yaml:"use_change_set"`
	LogLevel       string            `yaml:"log_level"`
	Errors         *Errors           `yaml:"errors"`
}

// Errors lists message fragments that override the built-in error wording
type Errors struct {
	NotFound  []string `yaml:"not_found"`
	NoUpdates []string `yaml:"no_updates"`
	NoChanges []string `yaml:"no_changes"`
}

// Duration accepts either a Go duration string ("30s", "2m") or a whole number of seconds
type Duration time.Duration

// UnmarshalYAML implements custom YAML unmarshalling for Duration
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", node.Line)
	}

	if seconds, err := strconv.Atoi(node.Value); err == nil {
		*d = Duration(time.Duration(seconds) * time.Second)
		return nil
	}

	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q: %w", node.Line, node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration in Go duration notation
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
