/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package file

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDuration_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
	}{
		{name: "seconds as integer", input: "wait_delay: 30", expected: 30 * time.Second},
		{name: "duration string", input: "wait_delay: 2m", expected: 2 * time.Minute},
		{name: "quoted duration", input: `wait_delay: "300s"`, expected: 300 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			require.NoError(t, yaml.Unmarshal([]byte(tt.input), &cfg))
			require.NotNil(t, cfg.WaitDelay)
			assert.Equal(t, tt.expected, time.Duration(*cfg.WaitDelay))
		})
	}
}

func TestDuration_UnmarshalYAML_Invalid(t *testing.T) {
	var cfg Config

	err := yaml.Unmarshal([]byte("wait_delay: soon"), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid duration "soon"`)

	err = yaml.Unmarshal([]byte("wait_delay: [1, 2]"), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration must be a scalar")
}

func TestDuration_MarshalYAML(t *testing.T) {
	d := Duration(90 * time.Second)

	data, err := yaml.Marshal(map[string]Duration{"wait_delay": d})

	require.NoError(t, err)
	assert.Equal(t, "wait_delay: 1m30s\n", string(data))
}

func TestConfig_UnmarshalYAML(t *testing.T) {
	input := `
region: us-west-2
profile: deploy
capabilities:
  - CAPABILITY_IAM
tags:
  Team: platform
use_change_set: true
log_level: debug
errors:
  not_found: ["does not exist", "not found"]
`
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(input), &cfg))

	assert.Equal(t, "us-west-2", cfg.Region)
	assert.Equal(t, "deploy", cfg.Profile)
	assert.Equal(t, []string{"CAPABILITY_IAM"}, cfg.Capabilities)
	assert.Equal(t, map[string]string{"Team": "platform"}, cfg.Tags)
	assert.True(t, cfg.UseChangeSet)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.NotNil(t, cfg.Errors)
	assert.Equal(t, []string{"does not exist", "not found"}, cfg.Errors.NotFound)
	assert.Nil(t, cfg.WaitDelay)
}
