/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"codeberg.org/orien/cfnsync/internal/describe"
	"codeberg.org/orien/cfnsync/internal/output"
	"github.com/spf13/cobra"
)

var (
	// describer can be injected for testing
	describer describe.Describer
)

// SetDescriber allows injection of a describer (for testing)
func SetDescriber(d describe.Describer) {
	describer = d
}

func getDescriber(region string) describe.Describer {
	if describer != nil {
		return describer
	}
	return describe.NewStackDescriber(region)
}

func newDescribeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Display detailed information about a CloudFormation stack",
		Long: `Display the live state of a CloudFormation stack.

Shows the stack status, ID, creation and update times, parameters, outputs,
tags and acknowledged capabilities.

Examples:
  cfn-sync describe --stack-name MyStack`,
		Args: cobra.NoArgs,
		RunE: runDescribe,
	}

	cmd.Flags().StringP("stack-name", "n", "", "name of the stack to describe")
	_ = cmd.MarkFlagRequired("stack-name")

	return cmd
}

func runDescribe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	stackName, _ := cmd.Flags().GetString("stack-name")

	s, client, err := sess.newStack(ctx, stackName, sess.config.WaitDelay)
	if err != nil {
		return err
	}

	desc, err := getDescriber(client.Region()).Describe(ctx, s)
	if err != nil {
		return fmt.Errorf("failed to describe stack %s: %w", stackName, err)
	}

	out := cmd.OutOrStdout()
	_, err = fmt.Fprint(out, describe.FormatStackDescription(desc, output.NewStyles(useColour(out))))
	return err
}
