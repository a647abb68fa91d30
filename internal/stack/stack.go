/*
Copyright © 2025 cfn-sync Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package stack holds the handle for a single CloudFormation stack and the
// polling loop that follows an operation on it to completion.
package stack

import (
	"context"
	"slices"
	"time"

	"codeberg.org/orien/cfnsync/internal/aws"
)

// DefaultWaitDelay is the pause between polls while an operation is in progress
const DefaultWaitDelay = 5 * time.Second

// Stack identifies a CloudFormation stack and reads its live description.
// A Stack is owned by one deploy or delete call and is not safe for concurrent use.
type Stack struct {
	client       aws.CloudFormationClient
	classifier   *aws.ErrorClassifier
	name         string
	id           string
	capabilities []string
	waitDelay    time.Duration
}

// Option configures a Stack
type Option func(*Stack)

// WithWaitDelay overrides the poll interval used while waiting on the stack
func WithWaitDelay(d time.Duration) Option {
	return func(s *Stack) {
		s.waitDelay = d
	}
}

// WithErrorClassifier replaces the default CloudFormation message matching
func WithErrorClassifier(c *aws.ErrorClassifier) Option {
	return func(s *Stack) {
		if c != nil {
			s.classifier = c
		}
	}
}

// New creates a handle for the named stack
func New(client aws.CloudFormationClient, name string, opts ...Option) *Stack {
	s := &Stack{
		client:     client,
		classifier: aws.DefaultErrorClassifier(),
		name:       name,
		waitDelay:  DefaultWaitDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the stack name supplied by the user
func (s *Stack) Name() string {
	return s.name
}

// ID returns the stack ID recorded from CloudFormation, or "" before one is known
func (s *Stack) ID() string {
	return s.id
}

// SetID records the stack ID returned by CloudFormation
func (s *Stack) SetID(id string) {
	s.id = id
}

// Identifier returns the ID when known, otherwise the name
func (s *Stack) Identifier() string {
	if s.id != "" {
		return s.id
	}
	return s.name
}

// Capabilities returns the capabilities acknowledged on create and update
func (s *Stack) Capabilities() []string {
	return slices.Clone(s.capabilities)
}

// SetCapabilities sets the capabilities applied by subsequent deploys
func (s *Stack) SetCapabilities(capabilities []string) {
	s.capabilities = slices.Clone(capabilities)
}

// WaitDelay returns the poll interval
func (s *Stack) WaitDelay() time.Duration {
	return s.waitDelay
}

// SetWaitDelay changes the poll interval
func (s *Stack) SetWaitDelay(d time.Duration) {
	s.waitDelay = d
}

// Client returns the CloudFormation client the stack is addressed through
func (s *Stack) Client() aws.CloudFormationClient {
	return s.client
}

// Classifier returns the error classifier used for this stack
func (s *Stack) Classifier() *aws.ErrorClassifier {
	return s.classifier
}

// Describe fetches the live description and records the stack ID
func (s *Stack) Describe(ctx context.Context) (*aws.StackDescription, error) {
	desc, err := aws.DescribeStack(ctx, s.client, s.Identifier())
	if err != nil {
		return nil, err
	}

	if s.id == "" && desc.StackID != "" {
		s.id = desc.StackID
	}

	return desc, nil
}

// Status returns the current stack status
func (s *Stack) Status(ctx context.Context) (aws.StackStatus, error) {
	desc, err := s.Describe(ctx)
	if err != nil {
		return "", err
	}
	return desc.Status, nil
}

// Exists reports whether the stack exists. Only a not-found error maps to false;
// every other describe failure is returned.
func (s *Stack) Exists(ctx context.Context) (bool, error) {
	_, err := s.Describe(ctx)
	if err == nil {
		return true, nil
	}

	if s.classifier.IsNotFound(err) {
		return false, nil
	}

	return false, err
}

// Parameters returns the stack's current parameter values
func (s *Stack) Parameters(ctx context.Context) (map[string]string, error) {
	desc, err := s.Describe(ctx)
	if err != nil {
		return nil, err
	}
	return desc.Parameters, nil
}

// Tags returns the stack's current tags
func (s *Stack) Tags(ctx context.Context) (map[string]string, error) {
	desc, err := s.Describe(ctx)
	if err != nil {
		return nil, err
	}
	return desc.Tags, nil
}

// Events returns the first page of stack events, newest first
func (s *Stack) Events(ctx context.Context) ([]aws.StackEvent, error) {
	return aws.DescribeStackEvents(ctx, s.client, s.Identifier())
}
