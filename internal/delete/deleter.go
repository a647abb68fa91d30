/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package delete removes a CloudFormation stack and, optionally, waits for the
// deletion to finish.
package delete

import (
	"context"
	"fmt"
	"log/slog"

	"codeberg.org/orien/cfnsync/internal/aws"
	"codeberg.org/orien/cfnsync/internal/stack"
	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// Deleter defines the interface for stack deletion operations
type Deleter interface {
	Delete(ctx context.Context, s *stack.Stack) error
}

// Options controls how a deleter behaves after submitting its request
type Options struct {
	// Wait blocks until the stack leaves the in-progress state
	Wait bool
	// Logger receives progress messages. Defaults to slog.Default().
	Logger *slog.Logger
	// Waiter follows the deletion. Defaults to stack.NewWaiter().
	Waiter *stack.Waiter
}

// DefaultOptions waits for completion using the default logger and waiter
func DefaultOptions() Options {
	return Options{Wait: true}
}

// DeletionFailedError reports a deletion that finished in a non-successful state
type DeletionFailedError struct {
	StackName string
	Status    aws.StackStatus
}

func (e *DeletionFailedError) Error() string {
	return fmt.Sprintf("deletion of stack %s failed with status %s", e.StackName, e.Status)
}

// StackDeleter implements Deleter using AWS CloudFormation
type StackDeleter struct {
	opts Options
}

// NewStackDeleter creates a new StackDeleter
func NewStackDeleter(opts Options) *StackDeleter {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Waiter == nil {
		opts.Waiter = stack.NewWaiter()
	}
	return &StackDeleter{opts: opts}
}

// Delete removes the stack. The stack is described first so that deletion and
// the following wait address it by ID; deleted stacks stop resolving by name.
func (d *StackDeleter) Delete(ctx context.Context, s *stack.Stack) error {
	if _, err := s.Describe(ctx); err != nil {
		return err
	}

	d.opts.Logger.Info("Deleting stack", "stack", s.Name())

	_, err := s.Client().DeleteStack(ctx, &cloudformation.DeleteStackInput{
		StackName: awssdk.String(s.Identifier()),
	})
	if err != nil {
		return fmt.Errorf("failed to delete stack %s: %w", s.Name(), err)
	}

	if !d.opts.Wait {
		return nil
	}

	if err := d.opts.Waiter.Wait(ctx, s); err != nil {
		return fmt.Errorf("failed waiting for stack %s: %w", s.Name(), err)
	}

	status, err := s.Status(ctx)
	if err != nil {
		return err
	}

	if !status.IsSuccessful() {
		return &DeletionFailedError{StackName: s.Name(), Status: status}
	}

	d.opts.Logger.Info("Stack deleted", "stack", s.Name())
	return nil
}
