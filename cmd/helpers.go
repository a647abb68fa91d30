/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"codeberg.org/orien/cfnsync/internal/aws"
	"codeberg.org/orien/cfnsync/internal/config"
	"codeberg.org/orien/cfnsync/internal/config/file"
	"codeberg.org/orien/cfnsync/internal/logging"
	"codeberg.org/orien/cfnsync/internal/output"
	"codeberg.org/orien/cfnsync/internal/stack"
	"github.com/spf13/cobra"
)

// ClientFactory creates the AWS client used by a command
type ClientFactory func(ctx context.Context, cfg aws.Config) (aws.Client, error)

var (
	// clientFactory can be injected for testing
	clientFactory ClientFactory

	// configProvider can be injected for testing
	configProvider config.ConfigProvider
)

// SetConfigProvider allows injection of a configuration provider (for testing)
func SetConfigProvider(p config.ConfigProvider) {
	configProvider = p
}

// getConfigProvider returns the injected provider, or a file provider that
// tolerates a missing file unless --config was given explicitly
func getConfigProvider(cmd *cobra.Command) config.ConfigProvider {
	if configProvider != nil {
		return configProvider
	}

	filename, _ := cmd.Flags().GetString("config")
	if cmd.Flags().Changed("config") {
		return file.NewProvider(filename)
	}
	return file.NewOptionalProvider(filename)
}

// SetClientFactory allows injection of an AWS client factory (for testing)
func SetClientFactory(f ClientFactory) {
	clientFactory = f
}

func getClientFactory() ClientFactory {
	if clientFactory != nil {
		return clientFactory
	}
	return func(ctx context.Context, cfg aws.Config) (aws.Client, error) {
		return aws.NewDefaultClient(ctx, cfg)
	}
}

// session bundles what every stack command needs
type session struct {
	config *config.Config
	logger *slog.Logger
	styles *output.Styles
}

// loadSession reads the configuration file and applies global flag overrides
func loadSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Flags()

	cfg, err := getConfigProvider(cmd).LoadConfig(cmd.Context())
	if err != nil {
		return nil, err
	}

	if region, _ := flags.GetString("region"); region != "" {
		cfg.Region = region
	}
	if profile, _ := flags.GetString("profile"); profile != "" {
		cfg.Profile = profile
	}
	if flags.Changed("log-level") {
		level, _ := flags.GetString("log-level")
		if !config.ValidLogLevel(level) {
			return nil, fmt.Errorf("unknown --log-level '%s', expected one of %s", level, strings.Join(config.LogLevels, ", "))
		}
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(level))
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}

	errOut := cmd.ErrOrStderr()
	colour := useColour(errOut)

	return &session{
		config: cfg,
		logger: logging.NewLogger(errOut, logging.ParseLevel(cfg.LogLevel), colour),
		styles: output.NewStyles(colour),
	}, nil
}

func useColour(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && output.ShouldUseColour(f)
}

// newStack creates a stack handle addressed through a fresh AWS client
func (sess *session) newStack(ctx context.Context, name string, waitDelay time.Duration) (*stack.Stack, aws.Client, error) {
	client, err := getClientFactory()(ctx, aws.Config{
		Region:  sess.config.Region,
		Profile: sess.config.Profile,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create AWS client: %w", err)
	}

	sess.logger.Debug("Using AWS region", "region", client.Region())

	s := stack.New(client.CloudFormation(), name,
		stack.WithWaitDelay(waitDelay),
		stack.WithErrorClassifier(sess.config.ErrorClassifier()),
	)
	return s, client, nil
}

// newWaiter creates a waiter that logs each stack event
func (sess *session) newWaiter() *stack.Waiter {
	return stack.NewWaiter(stack.WithObserver(logging.NewEventObserver(sess.logger, sess.styles)))
}

// waitDelay resolves the poll interval from the --wait-delay flag and config
func (sess *session) waitDelay(cmd *cobra.Command) (time.Duration, error) {
	if !cmd.Flags().Changed("wait-delay") {
		return sess.config.WaitDelay, nil
	}

	d, _ := cmd.Flags().GetDuration("wait-delay")
	if d <= 0 {
		return 0, fmt.Errorf("--wait-delay must be positive, got %s", d)
	}
	return d, nil
}

// parseKeyValues turns KEY=VALUE strings into a map. Only the first "=" separates
// key from value, so values may themselves contain "=".
func parseKeyValues(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid KEY=VALUE pair %q", pair)
		}
		if key == "" {
			return nil, fmt.Errorf("empty key in %q", pair)
		}
		result[key] = value
	}
	return result, nil
}
