/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"codeberg.org/orien/cfnsync/internal/delete"
	"github.com/spf13/cobra"
)

var (
	// deleter can be injected for testing
	deleter delete.Deleter
)

// SetDeleter allows injection of a deleter (for testing)
func SetDeleter(d delete.Deleter) {
	deleter = d
}

func getDeleter(opts delete.Options) delete.Deleter {
	if deleter != nil {
		return deleter
	}
	return delete.NewStackDeleter(opts)
}

func newDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a CloudFormation stack",
		Long: `Delete a CloudFormation stack and wait for the deletion to finish.

The stack is looked up first so that the deletion can be followed by stack ID
after the name stops resolving. The command fails if the stack does not exist
or ends in DELETE_FAILED.

CAUTION: Deletion is destructive and cannot be undone.

Examples:
  cfn-sync delete --stack-name MyStack
  cfn-sync delete --stack-name MyStack --no-wait`,
		Args: cobra.NoArgs,
		RunE: runDelete,
	}

	flags := cmd.Flags()
	flags.StringP("stack-name", "n", "", "name of the stack to delete")
	flags.Bool("no-wait", false, "return once the request is accepted")
	flags.Duration("wait-delay", 0, "interval between status polls (default from config, 5s)")
	_ = cmd.MarkFlagRequired("stack-name")

	return cmd
}

func runDelete(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	stackName, _ := cmd.Flags().GetString("stack-name")
	noWait, _ := cmd.Flags().GetBool("no-wait")

	waitDelay, err := sess.waitDelay(cmd)
	if err != nil {
		return err
	}

	s, _, err := sess.newStack(ctx, stackName, waitDelay)
	if err != nil {
		return err
	}

	d := getDeleter(delete.Options{
		Wait:   !noWait,
		Logger: sess.logger,
		Waiter: sess.newWaiter(),
	})

	if err := d.Delete(ctx, s); err != nil {
		return fmt.Errorf("error deleting stack %s: %w", stackName, err)
	}

	return nil
}
