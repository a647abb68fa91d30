/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package deploy

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/orien/cfnsync/internal/aws"
	"codeberg.org/orien/cfnsync/internal/stack"
	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/google/uuid"
)

// DefaultChangeSetDelay is the pause between change set status checks
const DefaultChangeSetDelay = 10 * time.Second

// ChangeSetNamePrefix starts the name of every change set cfn-sync creates
const ChangeSetNamePrefix = "cfn-sync-"

// ChangeSetDeployer deploys by creating and executing a change set
type ChangeSetDeployer struct {
	opts    Options
	delay   time.Duration
	sleeper stack.Sleeper
	newName func() string
}

// ChangeSetOption configures a ChangeSetDeployer
type ChangeSetOption func(*ChangeSetDeployer)

// WithChangeSetDelay overrides the change set poll interval
func WithChangeSetDelay(d time.Duration) ChangeSetOption {
	return func(c *ChangeSetDeployer) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithChangeSetSleeper replaces the timer used between change set polls
func WithChangeSetSleeper(s stack.Sleeper) ChangeSetOption {
	return func(c *ChangeSetDeployer) {
		if s != nil {
			c.sleeper = s
		}
	}
}

// WithChangeSetName fixes the generated change set name
func WithChangeSetName(name string) ChangeSetOption {
	return func(c *ChangeSetDeployer) {
		c.newName = func() string { return name }
	}
}

// NewChangeSetDeployer creates a deployer that goes through a change set
func NewChangeSetDeployer(opts Options, csOpts ...ChangeSetOption) *ChangeSetDeployer {
	c := &ChangeSetDeployer{
		opts:    opts.withDefaults(),
		delay:   DefaultChangeSetDelay,
		sleeper: stack.TimerSleeper{},
		newName: func() string { return ChangeSetNamePrefix + uuid.NewString() },
	}
	for _, opt := range csOpts {
		opt(c)
	}
	return c
}

// Deploy creates a change set, waits for it to be ready and executes it.
// A change set containing no changes is deleted and the deploy succeeds.
func (c *ChangeSetDeployer) Deploy(ctx context.Context, s *stack.Stack, templateBody string, parameters, tags map[string]string) error {
	exists, err := s.Exists(ctx)
	if err != nil {
		return err
	}

	changeSetType := types.ChangeSetTypeCreate
	stackName := s.Name()
	if exists {
		changeSetType = types.ChangeSetTypeUpdate
		stackName = s.Identifier()
	}

	name := c.newName()
	c.opts.Logger.Info("Creating change set", "stack", s.Name(), "change_set", name, "type", changeSetType)

	created, err := s.Client().CreateChangeSet(ctx, &cloudformation.CreateChangeSetInput{
		StackName:     awssdk.String(stackName),
		ChangeSetName: awssdk.String(name),
		ChangeSetType: changeSetType,
		TemplateBody:  awssdk.String(templateBody),
		Parameters:    aws.ToParameters(parameters),
		Tags:          aws.ToTags(tags),
		Capabilities:  aws.ToCapabilities(s.Capabilities()),
	})
	if err != nil {
		return fmt.Errorf("failed to create change set for stack %s: %w", s.Name(), err)
	}

	if id := awssdk.ToString(created.StackId); id != "" {
		s.SetID(id)
	}
	changeSetID := awssdk.ToString(created.Id)

	ready, err := c.waitForChangeSet(ctx, s, changeSetID)
	if err != nil {
		return err
	}
	if !ready {
		return nil
	}

	c.opts.Logger.Info("Executing change set", "stack", s.Name(), "change_set", name)
	_, err = s.Client().ExecuteChangeSet(ctx, &cloudformation.ExecuteChangeSetInput{
		ChangeSetName:      awssdk.String(changeSetID),
		StackName:          awssdk.String(s.Identifier()),
		ClientRequestToken: awssdk.String(name),
	})
	if err != nil {
		return fmt.Errorf("failed to execute change set %s: %w", name, err)
	}

	return waitAndVerify(ctx, c.opts, s)
}

// waitForChangeSet polls until the change set is ready. It reports false when
// the change set held no changes and has been cleaned up.
func (c *ChangeSetDeployer) waitForChangeSet(ctx context.Context, s *stack.Stack, changeSetID string) (bool, error) {
	for {
		described, err := s.Client().DescribeChangeSet(ctx, &cloudformation.DescribeChangeSetInput{
			ChangeSetName: awssdk.String(changeSetID),
			StackName:     awssdk.String(s.Identifier()),
		})
		if err != nil {
			return false, fmt.Errorf("failed to describe change set %s: %w", changeSetID, err)
		}

		switch described.Status {
		case types.ChangeSetStatusCreateComplete:
			return true, nil
		case types.ChangeSetStatusFailed:
			return false, c.handleFailedChangeSet(ctx, s, changeSetID, awssdk.ToString(described.StatusReason))
		case types.ChangeSetStatusCreatePending, types.ChangeSetStatusCreateInProgress:
			if err := c.sleeper.Sleep(ctx, c.delay); err != nil {
				return false, err
			}
		default:
			return false, fmt.Errorf("unexpected change set status: %s", described.Status)
		}
	}
}

func (c *ChangeSetDeployer) handleFailedChangeSet(ctx context.Context, s *stack.Stack, changeSetID, reason string) error {
	if s.Classifier().ClassifyChangeSetReason(reason) != aws.ErrorKindNoChanges {
		if reason == "" {
			reason = "unknown reason"
		}
		return &ChangeSetFailedError{StackName: s.Name(), ChangeSetID: changeSetID, Reason: reason}
	}

	_, err := s.Client().DeleteChangeSet(ctx, &cloudformation.DeleteChangeSetInput{
		ChangeSetName: awssdk.String(changeSetID),
		StackName:     awssdk.String(s.Identifier()),
	})
	if err != nil {
		return fmt.Errorf("failed to delete change set %s: %w", changeSetID, err)
	}

	c.opts.Logger.Info(fmt.Sprintf("No changes. Stack %s not updated", s.Name()))
	return nil
}
