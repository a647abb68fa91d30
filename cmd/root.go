/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"

	"codeberg.org/orien/cfnsync/internal/config"
	"codeberg.org/orien/cfnsync/internal/version"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// RootCommand builds the cfn-sync command tree
func RootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cfn-sync",
		Short: "Deploy and delete CloudFormation stacks synchronously",
		Long: `cfn-sync submits a CloudFormation create, update or delete request and then
follows the stack until the operation finishes, printing stack events as they
happen. It exits non-zero when the stack ends in a failed state.

• Creates the stack when it does not exist, otherwise updates it
• Treats "no changes" as success
• Optionally deploys through a change set
• Reads defaults from cfn-sync.yaml when present`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(version.Info() + "\n")

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", config.DefaultFilename, "configuration file")
	flags.StringP("region", "r", "", "AWS region (overrides config)")
	flags.StringP("profile", "p", "", "AWS profile (overrides config)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.String("log-level", "", "log level: debug, info, warn or error (overrides config)")

	rootCmd.AddCommand(newDeployCommand())
	rootCmd.AddCommand(newDeleteCommand())
	rootCmd.AddCommand(newDescribeCommand())

	return rootCmd
}

// Execute runs the command tree. This is called by main.main().
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, RootCommand())
}
