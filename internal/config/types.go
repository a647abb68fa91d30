/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package config holds the resolved defaults that cfn-sync commands start from.
package config

import (
	"context"
	"maps"
	"slices"
	"strings"
	"time"

	"codeberg.org/orien/cfnsync/internal/aws"
)

// DefaultFilename is the configuration file looked for in the working directory
const DefaultFilename = "cfn-sync.yaml"

// LogLevels lists the accepted log level names
var LogLevels = []string{"debug", "info", "warn", "warning", "error"}

// ValidLogLevel reports whether level names a known log level, ignoring case
func ValidLogLevel(level string) bool {
	return slices.Contains(LogLevels, strings.ToLower(strings.TrimSpace(level)))
}

// ConfigProvider defines the interface for loading configuration
type ConfigProvider interface {
	// LoadConfig loads and resolves the configuration
	LoadConfig(ctx context.Context) (*Config, error)
}

// Config represents the resolved configuration
type Config struct {
	Region         string
	Profile        string
	WaitDelay      time.Duration
	ChangeSetDelay time.Duration
	Capabilities   []string
	Tags           map[string]string
	UseChangeSet   bool
	LogLevel       string
	Errors         ErrorPatterns
}

// ErrorPatterns overrides the message fragments used to recognise benign
// CloudFormation errors. Empty lists keep the built-in wording.
type ErrorPatterns struct {
	NotFound  []string
	NoUpdates []string
	NoChanges []string
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		WaitDelay:      5 * time.Second,
		ChangeSetDelay: 10 * time.Second,
		LogLevel:       "info",
		Tags:           map[string]string{},
	}
}

// ErrorClassifier builds a classifier from the configured patterns
func (c *Config) ErrorClassifier() *aws.ErrorClassifier {
	classifier := aws.DefaultErrorClassifier()
	if len(c.Errors.NotFound) > 0 {
		classifier.NotFound = slices.Clone(c.Errors.NotFound)
	}
	if len(c.Errors.NoUpdates) > 0 {
		classifier.NoUpdates = slices.Clone(c.Errors.NoUpdates)
	}
	if len(c.Errors.NoChanges) > 0 {
		classifier.NoChanges = slices.Clone(c.Errors.NoChanges)
	}
	return classifier
}

// MergeTags returns the configured tags overlaid with overrides
func (c *Config) MergeTags(overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(c.Tags)+len(overrides))
	maps.Copy(merged, c.Tags)
	maps.Copy(merged, overrides)
	return merged
}

// MergeCapabilities returns the configured capabilities followed by any extra ones not already present
func (c *Config) MergeCapabilities(extra []string) []string {
	merged := slices.Clone(c.Capabilities)
	for _, capability := range extra {
		if !slices.Contains(merged, capability) {
			merged = append(merged, capability)
		}
	}
	return merged
}
