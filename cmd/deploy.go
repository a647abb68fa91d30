/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"codeberg.org/orien/cfnsync/internal/deploy"
	"codeberg.org/orien/cfnsync/internal/resolve"
	"github.com/spf13/cobra"
)

var (
	// deployer can be injected for testing
	deployer deploy.Deployer
)

// SetDeployer allows injection of a deployer (for testing)
func SetDeployer(d deploy.Deployer) {
	deployer = d
}

// getDeployer returns the injected deployer or builds the strategy selected by flags and config
func getDeployer(sess *session, opts deploy.Options, useChangeSet bool) deploy.Deployer {
	if deployer != nil {
		return deployer
	}

	if useChangeSet {
		return deploy.NewChangeSetDeployer(opts, deploy.WithChangeSetDelay(sess.config.ChangeSetDelay))
	}
	return deploy.NewDirectDeployer(opts)
}

func newDeployCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Create or update a CloudFormation stack",
		Long: `Create or update a CloudFormation stack and wait for the operation to finish.

The stack is created when it does not exist and updated otherwise. An update
that would change nothing is reported and treated as success. Stack events are
printed as they occur; the command fails if the stack ends in a failed or
rolled-back state.

Examples:
  cfn-sync deploy --stack-name MyStack --template-file stack.yaml
  cfn-sync deploy --stack-name MyStack --template-file stack.yaml \
    --parameter-overrides Hello=You --tags MyTag=TagValue
  cfn-sync deploy --stack-name MyStack --template-file stack.yaml --use-change-set
  cfn-sync deploy --stack-name MyStack --template-file stack.yaml.tmpl --var Env=prod`,
		Args: cobra.NoArgs,
		RunE: runDeploy,
	}

	flags := cmd.Flags()
	flags.StringP("stack-name", "n", "", "name of the stack to deploy")
	flags.StringP("template-file", "t", "", "path or file:// URI of the template")
	flags.StringArray("parameter-overrides", nil, "stack parameter as KEY=VALUE (repeatable)")
	flags.StringArray("tags", nil, "stack tag as KEY=VALUE (repeatable)")
	flags.StringSlice("capabilities", nil, "capabilities to acknowledge, e.g. CAPABILITY_IAM")
	flags.StringArray("var", nil, "template variable as KEY=VALUE; renders the template with Sprig (repeatable)")
	flags.Bool("use-change-set", false, "deploy through a change set")
	flags.Bool("no-wait", false, "return once the request is accepted")
	flags.Duration("wait-delay", 0, "interval between status polls (default from config, 5s)")
	_ = cmd.MarkFlagRequired("stack-name")
	_ = cmd.MarkFlagRequired("template-file")

	return cmd
}

func runDeploy(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	flags := cmd.Flags()

	sess, err := loadSession(cmd)
	if err != nil {
		return err
	}

	stackName, _ := flags.GetString("stack-name")
	templateFile, _ := flags.GetString("template-file")
	rawParameters, _ := flags.GetStringArray("parameter-overrides")
	rawTags, _ := flags.GetStringArray("tags")
	rawVars, _ := flags.GetStringArray("var")
	capabilities, _ := flags.GetStringSlice("capabilities")
	useChangeSet, _ := flags.GetBool("use-change-set")
	noWait, _ := flags.GetBool("no-wait")

	parameters, err := parseKeyValues(rawParameters)
	if err != nil {
		return fmt.Errorf("invalid --parameter-overrides: %w", err)
	}
	tags, err := parseKeyValues(rawTags)
	if err != nil {
		return fmt.Errorf("invalid --tags: %w", err)
	}
	variables, err := parseKeyValues(rawVars)
	if err != nil {
		return fmt.Errorf("invalid --var: %w", err)
	}

	waitDelay, err := sess.waitDelay(cmd)
	if err != nil {
		return err
	}

	templateBody, err := resolve.NewTemplateLoader().Load(templateFile, variables)
	if err != nil {
		return err
	}

	s, _, err := sess.newStack(ctx, stackName, waitDelay)
	if err != nil {
		return err
	}
	s.SetCapabilities(sess.config.MergeCapabilities(capabilities))

	opts := deploy.Options{
		Wait:   !noWait,
		Logger: sess.logger,
		Waiter: sess.newWaiter(),
	}
	d := getDeployer(sess, opts, useChangeSet || sess.config.UseChangeSet)

	if err := d.Deploy(ctx, s, templateBody, parameters, sess.config.MergeTags(tags)); err != nil {
		return fmt.Errorf("error deploying stack %s: %w", stackName, err)
	}

	return nil
}
