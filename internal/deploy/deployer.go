/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package deploy creates or updates a CloudFormation stack and, optionally,
// waits for the operation to finish.
package deploy

import (
	"context"
	"fmt"
	"log/slog"

	"codeberg.org/orien/cfnsync/internal/aws"
	"codeberg.org/orien/cfnsync/internal/stack"
)

// Deployer defines the interface for stack deployment operations
type Deployer interface {
	Deploy(ctx context.Context, s *stack.Stack, templateBody string, parameters, tags map[string]string) error
}

// Options controls how a deployer behaves after submitting its request
type Options struct {
	// Wait blocks until the stack leaves the in-progress state
	Wait bool
	// Logger receives progress messages. Defaults to slog.Default().
	Logger *slog.Logger
	// Waiter follows the stack operation. Defaults to stack.NewWaiter().
	Waiter *stack.Waiter
}

// DefaultOptions waits for completion using the default logger and waiter
func DefaultOptions() Options {
	return Options{Wait: true}
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Waiter == nil {
		o.Waiter = stack.NewWaiter()
	}
	return o
}

// DeploymentFailedError reports a deployment that finished in a non-successful state
type DeploymentFailedError struct {
	StackName string
	Status    aws.StackStatus
}

func (e *DeploymentFailedError) Error() string {
	return fmt.Sprintf("deployment of stack %s failed with status %s", e.StackName, e.Status)
}

// ChangeSetFailedError reports a change set that CloudFormation could not create
type ChangeSetFailedError struct {
	StackName   string
	ChangeSetID string
	Reason      string
}

func (e *ChangeSetFailedError) Error() string {
	return fmt.Sprintf("change set %s for stack %s failed: %s", e.ChangeSetID, e.StackName, e.Reason)
}

// waitAndVerify follows the operation to completion and checks the final status
func waitAndVerify(ctx context.Context, opts Options, s *stack.Stack) error {
	if !opts.Wait {
		return nil
	}

	if err := opts.Waiter.Wait(ctx, s); err != nil {
		return fmt.Errorf("failed waiting for stack %s: %w", s.Name(), err)
	}

	status, err := s.Status(ctx)
	if err != nil {
		return err
	}

	if !status.IsSuccessful() {
		return &DeploymentFailedError{StackName: s.Name(), Status: status}
	}

	opts.Logger.Info("Stack deployed", "stack", s.Name(), "status", status)
	return nil
}
