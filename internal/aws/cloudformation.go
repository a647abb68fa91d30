/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/samber/lo"
)

// StackDescription is the remote description of a CloudFormation stack
type StackDescription struct {
	StackID      string
	Name         string
	Status       StackStatus
	StatusReason string
	Description  string
	CreatedTime  *time.Time
	UpdatedTime  *time.Time
	Parameters   map[string]string
	Outputs      map[string]string
	Tags         map[string]string
	Capabilities []string
}

// StackEvent is a single entry from a stack's event log
type StackEvent struct {
	EventId              string
	StackName            string
	LogicalResourceId    string
	PhysicalResourceId   string
	ResourceType         string
	Timestamp            time.Time
	ResourceStatus       string
	ResourceStatusReason string
}

// String renders the event as "<logical id> - <status>[ - <reason>]"
func (e StackEvent) String() string {
	line := fmt.Sprintf("%s - %s", e.LogicalResourceId, e.ResourceStatus)
	if e.ResourceStatusReason != "" {
		line += " - " + e.ResourceStatusReason
	}
	return line
}

// DescribeStack calls DescribeStacks for a single stack name or ID
func DescribeStack(ctx context.Context, client CloudFormationClient, identifier string) (*StackDescription, error) {
	result, err := client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(identifier),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe stack %s: %w", identifier, err)
	}

	if len(result.Stacks) == 0 {
		return nil, fmt.Errorf("failed to describe stack %s: no stacks returned", identifier)
	}

	return newStackDescription(result.Stacks[0]), nil
}

func newStackDescription(s types.Stack) *StackDescription {
	return &StackDescription{
		StackID:      aws.ToString(s.StackId),
		Name:         aws.ToString(s.StackName),
		Status:       StackStatus(s.StackStatus),
		StatusReason: aws.ToString(s.StackStatusReason),
		Description:  aws.ToString(s.Description),
		CreatedTime:  s.CreationTime,
		UpdatedTime:  s.LastUpdatedTime,
		Parameters:   FromParameters(s.Parameters),
		Outputs:      FromOutputs(s.Outputs),
		Tags:         FromTags(s.Tags),
		Capabilities: lo.Map(s.Capabilities, func(c types.Capability, _ int) string {
			return string(c)
		}),
	}
}

// DescribeStackEvents returns the first page of a stack's events, newest first
func DescribeStackEvents(ctx context.Context, client CloudFormationClient, identifier string) ([]StackEvent, error) {
	result, err := client.DescribeStackEvents(ctx, &cloudformation.DescribeStackEventsInput{
		StackName: aws.String(identifier),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe stack events for %s: %w", identifier, err)
	}

	return lo.Map(result.StackEvents, func(e types.StackEvent, _ int) StackEvent {
		return StackEvent{
			EventId:              aws.ToString(e.EventId),
			StackName:            aws.ToString(e.StackName),
			LogicalResourceId:    aws.ToString(e.LogicalResourceId),
			PhysicalResourceId:   aws.ToString(e.PhysicalResourceId),
			ResourceType:         aws.ToString(e.ResourceType),
			Timestamp:            aws.ToTime(e.Timestamp),
			ResourceStatus:       string(e.ResourceStatus),
			ResourceStatusReason: aws.ToString(e.ResourceStatusReason),
		}
	}), nil
}
