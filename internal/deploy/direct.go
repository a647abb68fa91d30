/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package deploy

import (
	"context"
	"fmt"

	"codeberg.org/orien/cfnsync/internal/aws"
	"codeberg.org/orien/cfnsync/internal/stack"
	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// DirectDeployer deploys with CreateStack or UpdateStack
type DirectDeployer struct {
	opts Options
}

// NewDirectDeployer creates a deployer that submits stack changes directly
func NewDirectDeployer(opts Options) *DirectDeployer {
	return &DirectDeployer{opts: opts.withDefaults()}
}

// Deploy creates the stack if it does not exist, otherwise updates it.
// An update with nothing to change is logged and is not an error.
func (d *DirectDeployer) Deploy(ctx context.Context, s *stack.Stack, templateBody string, parameters, tags map[string]string) error {
	exists, err := s.Exists(ctx)
	if err != nil {
		return err
	}

	if exists {
		updated, err := d.update(ctx, s, templateBody, parameters, tags)
		if err != nil {
			return err
		}
		if !updated {
			return nil
		}
	} else {
		if err := d.create(ctx, s, templateBody, parameters, tags); err != nil {
			return err
		}
	}

	return waitAndVerify(ctx, d.opts, s)
}

func (d *DirectDeployer) create(ctx context.Context, s *stack.Stack, templateBody string, parameters, tags map[string]string) error {
	d.opts.Logger.Info("Creating stack", "stack", s.Name())

	result, err := s.Client().CreateStack(ctx, &cloudformation.CreateStackInput{
		StackName:    awssdk.String(s.Name()),
		TemplateBody: awssdk.String(templateBody),
		Parameters:   aws.ToParameters(parameters),
		Tags:         aws.ToTags(tags),
		Capabilities: aws.ToCapabilities(s.Capabilities()),
	})
	if err != nil {
		return fmt.Errorf("failed to create stack %s: %w", s.Name(), err)
	}

	s.SetID(awssdk.ToString(result.StackId))
	return nil
}

func (d *DirectDeployer) update(ctx context.Context, s *stack.Stack, templateBody string, parameters, tags map[string]string) (bool, error) {
	d.opts.Logger.Info("Updating stack", "stack", s.Name())

	result, err := s.Client().UpdateStack(ctx, &cloudformation.UpdateStackInput{
		StackName:    awssdk.String(s.Identifier()),
		TemplateBody: awssdk.String(templateBody),
		Parameters:   aws.ToParameters(parameters),
		Tags:         aws.ToTags(tags),
		Capabilities: aws.ToCapabilities(s.Capabilities()),
	})
	if err != nil {
		if s.Classifier().IsNoChanges(err) {
			d.opts.Logger.Info(fmt.Sprintf("No changes. Stack %s not updated", s.Name()))
			return false, nil
		}
		return false, fmt.Errorf("failed to update stack %s: %w", s.Name(), err)
	}

	if id := awssdk.ToString(result.StackId); id != "" {
		s.SetID(id)
	}
	return true, nil
}
