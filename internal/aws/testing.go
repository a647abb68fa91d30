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
	"github.com/stretchr/testify/mock"
)

// NewTestStackID returns a deterministic stack ARN for the named stack
func NewTestStackID(name string) string {
	return fmt.Sprintf("arn:aws:cloudformation:us-east-1:123456789012:stack/%s/00000000-0000-0000-0000-000000000000", name)
}

// NewTestDescribeStacksOutput creates a DescribeStacks response for a single stack
func NewTestDescribeStacksOutput(name string, status StackStatus) *cloudformation.DescribeStacksOutput {
	return &cloudformation.DescribeStacksOutput{
		Stacks: []types.Stack{
			{
				StackId:      aws.String(NewTestStackID(name)),
				StackName:    aws.String(name),
				StackStatus:  types.StackStatus(status),
				CreationTime: aws.Time(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
			},
		},
	}
}

// NewTestStackEventsOutput creates a DescribeStackEvents response; events are given newest first
func NewTestStackEventsOutput(events ...StackEvent) *cloudformation.DescribeStackEventsOutput {
	out := &cloudformation.DescribeStackEventsOutput{}
	for _, e := range events {
		out.StackEvents = append(out.StackEvents, types.StackEvent{
			EventId:              aws.String(e.EventId),
			StackName:            aws.String(e.StackName),
			LogicalResourceId:    aws.String(e.LogicalResourceId),
			ResourceType:         aws.String(e.ResourceType),
			Timestamp:            aws.Time(e.Timestamp),
			ResourceStatus:       types.ResourceStatus(e.ResourceStatus),
			ResourceStatusReason: aws.String(e.ResourceStatusReason),
		})
	}
	return out
}

// NewTestStackEvent creates a stack event with the given ID, logical resource and status
func NewTestStackEvent(id, logicalID, status string) StackEvent {
	return StackEvent{
		EventId:           id,
		StackName:         logicalID,
		LogicalResourceId: logicalID,
		ResourceType:      "AWS::CloudFormation::Stack",
		Timestamp:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ResourceStatus:    status,
	}
}

// NewTestStackNotFoundError returns the error CloudFormation raises when describing a missing stack
func NewTestStackNotFoundError(name string) error {
	return fmt.Errorf("operation error CloudFormation: DescribeStacks, api error ValidationError: Stack with id %s does not exist", name)
}

// MockClient implements Client for testing
type MockClient struct {
	mock.Mock
}

func (m *MockClient) CloudFormation() CloudFormationClient {
	args := m.Called()
	return args.Get(0).(CloudFormationClient)
}

func (m *MockClient) Region() string {
	args := m.Called()
	return args.String(0)
}

// MockCloudFormationClient implements the CloudFormationClient interface for testing
type MockCloudFormationClient struct {
	mock.Mock
}

func (m *MockCloudFormationClient) CreateStack(ctx context.Context, params *cloudformation.CreateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.CreateStackOutput), args.Error(1)
}

func (m *MockCloudFormationClient) UpdateStack(ctx context.Context, params *cloudformation.UpdateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.UpdateStackOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.UpdateStackOutput), args.Error(1)
}

func (m *MockCloudFormationClient) DeleteStack(ctx context.Context, params *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.DeleteStackOutput), args.Error(1)
}

func (m *MockCloudFormationClient) DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.DescribeStacksOutput), args.Error(1)
}

func (m *MockCloudFormationClient) DescribeStackEvents(ctx context.Context, params *cloudformation.DescribeStackEventsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackEventsOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.DescribeStackEventsOutput), args.Error(1)
}

func (m *MockCloudFormationClient) CreateChangeSet(ctx context.Context, params *cloudformation.CreateChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateChangeSetOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.CreateChangeSetOutput), args.Error(1)
}

func (m *MockCloudFormationClient) DescribeChangeSet(ctx context.Context, params *cloudformation.DescribeChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeChangeSetOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.DescribeChangeSetOutput), args.Error(1)
}

func (m *MockCloudFormationClient) ExecuteChangeSet(ctx context.Context, params *cloudformation.ExecuteChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ExecuteChangeSetOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.ExecuteChangeSetOutput), args.Error(1)
}

func (m *MockCloudFormationClient) DeleteChangeSet(ctx context.Context, params *cloudformation.DeleteChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteChangeSetOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.DeleteChangeSetOutput), args.Error(1)
}
